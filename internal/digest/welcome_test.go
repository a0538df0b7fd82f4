package digest

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestWelcome_MissingEmail(t *testing.T) {
	mailer := &fakeMailer{}
	runner := NewWelcomeRunner(&fakeLLM{text: "hello"}, mailer)

	res := runner.Run(context.Background(), SignupEvent{Name: "A"})

	assert.Equal(t, false, res.Success)
	assert.Equal(t, 0, len(mailer.welcomes))
}

func TestWelcome_SendsGeneratedIntro(t *testing.T) {
	mailer := &fakeMailer{}
	runner := NewWelcomeRunner(&fakeLLM{text: "Welcome to the market."}, mailer)

	res := runner.Run(context.Background(), SignupEvent{
		Email:   "a@example.com",
		Name:    "A",
		Country: "DE",
	})

	assert.Equal(t, true, res.Success)
	assert.Equal(t, 1, len(mailer.welcomes))
	assert.Equal(t, "a@example.com", mailer.welcomes[0].email)
	assert.Equal(t, "Welcome to the market.", mailer.welcomes[0].content)
}

func TestWelcome_GenerationFailureUsesFallbackIntro(t *testing.T) {
	mailer := &fakeMailer{}
	runner := NewWelcomeRunner(&fakeLLM{err: errors.New("model unavailable")}, mailer)

	res := runner.Run(context.Background(), SignupEvent{Email: "a@example.com", Name: "A"})

	assert.Equal(t, true, res.Success)
	assert.Equal(t, 1, len(mailer.welcomes))
	assert.Equal(t, fallbackWelcomeIntro, mailer.welcomes[0].content)
}

func TestWelcome_SendFailure(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]bool{"a@example.com": true}}
	runner := NewWelcomeRunner(&fakeLLM{text: "hello"}, mailer)

	res := runner.Run(context.Background(), SignupEvent{Email: "a@example.com", Name: "A"})

	assert.Equal(t, false, res.Success)
}
