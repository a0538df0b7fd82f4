package digest

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"signalist/internal/model"
)

// MailSender is the delivery capability the dispatcher hands rendered
// messages to.
type MailSender interface {
	SendNewsSummary(ctx context.Context, email, date, newsContent string) error
	SendWelcome(ctx context.Context, email, name, intro string) error
}

// Dispatcher delivers digest results, isolating failures per recipient: one
// failed send is logged and never cancels the others.
type Dispatcher struct {
	mailer      MailSender
	concurrency int
	now         func() time.Time
}

func NewDispatcher(mailer MailSender) *Dispatcher {
	return &Dispatcher{
		mailer:      mailer,
		concurrency: batchConcurrency,
		now:         time.Now,
	}
}

// DispatchAll sends every successfully built digest and returns how many
// were delivered. Results that failed at the build stage, or whose recipient
// has no resolvable email, are skipped.
func (d *Dispatcher) DispatchAll(ctx context.Context, results []model.DigestResult) int {
	date := d.now().Format("January 2, 2006")

	delivered := make([]bool, len(results))

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for i, res := range results {
		if !res.Succeeded || res.User.Email == "" {
			continue
		}
		g.Go(func() error {
			if err := d.mailer.SendNewsSummary(ctx, res.User.Email, date, res.Summary); err != nil {
				slog.Error("error sending news summary email", "email", res.User.Email, "error", err)
				return nil // other recipients still get theirs
			}
			delivered[i] = true
			return nil
		})
	}
	g.Wait()

	count := 0
	for _, ok := range delivered {
		if ok {
			count++
		}
	}
	return count
}
