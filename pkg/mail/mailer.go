package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	client *mail.Client
	from   string
}

func NewMailer(cfg Config) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is not configured")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("sender address is not configured")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

func (m *Mailer) SendWelcome(ctx context.Context, email, name, intro string) error {
	return m.send(ctx, email, welcomeSubject, RenderWelcome(name, intro))
}

func (m *Mailer) SendNewsSummary(ctx context.Context, email, date, newsContent string) error {
	return m.send(ctx, email, newsSummarySubject, RenderNewsSummary(date, newsContent))
}

func (m *Mailer) send(ctx context.Context, to, subject, html string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat("Signalist", m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
