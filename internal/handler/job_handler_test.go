package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"signalist/internal/digest"
	"signalist/internal/model"
)

type fakeDigestRunner struct {
	result model.JobResult
	runs   int
}

func (f *fakeDigestRunner) Run(ctx context.Context) model.JobResult {
	f.runs++
	return f.result
}

type fakeWelcomeRunner struct {
	result model.JobResult
	event  digest.SignupEvent
}

func (f *fakeWelcomeRunner) Run(ctx context.Context, event digest.SignupEvent) model.JobResult {
	f.event = event
	return f.result
}

type fakeUserCounter struct {
	count int
	err   error
}

func (f *fakeUserCounter) DigestUserCount() (int, error) {
	return f.count, f.err
}

func newJobRouter(digestRunner *fakeDigestRunner, welcomeRunner *fakeWelcomeRunner, users *fakeUserCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewJobHandler(digestRunner, welcomeRunner, users)
	r.POST("/jobs/daily-news", h.RunDailyNews)
	r.POST("/jobs/welcome", h.SendWelcome)
	r.GET("/health", h.GetHealth)
	return r
}

func TestRunDailyNews(t *testing.T) {
	runner := &fakeDigestRunner{result: model.JobResult{Success: true, Message: "News summary email sent to 2 of 2 users"}}
	r := newJobRouter(runner, &fakeWelcomeRunner{}, &fakeUserCounter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jobs/daily-news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runner.runs)

	var res model.JobResult
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, "News summary email sent to 2 of 2 users", res.Message)
}

func TestSendWelcome_MissingEmail(t *testing.T) {
	r := newJobRouter(&fakeDigestRunner{}, &fakeWelcomeRunner{}, &fakeUserCounter{})

	body, _ := json.Marshal(SignupRequest{Name: "A"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jobs/welcome", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendWelcome_PassesProfile(t *testing.T) {
	welcome := &fakeWelcomeRunner{result: model.JobResult{Success: true, Message: "Welcome email sent successfully!"}}
	r := newJobRouter(&fakeDigestRunner{}, welcome, &fakeUserCounter{})

	body, _ := json.Marshal(SignupRequest{
		Email:           "a@example.com",
		Name:            "A",
		Country:         "DE",
		InvestmentGoals: "Growth",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jobs/welcome", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@example.com", welcome.event.Email)
	assert.Equal(t, "DE", welcome.event.Country)
	assert.Equal(t, "Growth", welcome.event.InvestmentGoals)
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newJobRouter(&fakeDigestRunner{}, &fakeWelcomeRunner{}, &fakeUserCounter{count: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newJobRouter(&fakeDigestRunner{}, &fakeWelcomeRunner{}, &fakeUserCounter{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
