package digest

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"signalist/internal/model"
)

const batchConcurrency = 8

type UserDirectory interface {
	AllForDigest() ([]model.User, error)
}

type WatchlistStore interface {
	SymbolsByUserEmail(email string) ([]string, error)
}

// BatchRunner drives the daily digest across the whole user population.
// Only a failed or empty user-list fetch stops a run; every later stage
// failure is confined to its user.
type BatchRunner struct {
	users       UserDirectory
	watchlists  WatchlistStore
	builder     *Builder
	summarizer  *Summarizer
	dispatcher  *Dispatcher
	concurrency int
}

func NewBatchRunner(users UserDirectory, watchlists WatchlistStore, builder *Builder, summarizer *Summarizer, dispatcher *Dispatcher) *BatchRunner {
	return &BatchRunner{
		users:       users,
		watchlists:  watchlists,
		builder:     builder,
		summarizer:  summarizer,
		dispatcher:  dispatcher,
		concurrency: batchConcurrency,
	}
}

// Run executes one digest cycle and always returns a terminal result; no
// per-user failure surfaces to the trigger.
func (r *BatchRunner) Run(ctx context.Context) model.JobResult {
	users, err := r.users.AllForDigest()
	if err != nil {
		slog.Error("error loading users for news email", "error", err)
		return model.JobResult{Success: false, Message: "No users found for news email"}
	}
	if len(users) == 0 {
		return model.JobResult{Success: false, Message: "No users found for news email"}
	}

	results := make([]model.DigestResult, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, user := range users {
		g.Go(func() error {
			results[i] = r.buildForUser(gctx, user)
			return nil
		})
	}
	g.Wait()

	delivered := r.dispatcher.DispatchAll(ctx, results)

	return model.JobResult{
		Success: true,
		Message: fmt.Sprintf("News summary email sent to %d of %d users", delivered, len(users)),
	}
}

func (r *BatchRunner) buildForUser(ctx context.Context, user model.User) model.DigestResult {
	res := model.DigestResult{User: user}

	symbols, err := r.watchlists.SymbolsByUserEmail(user.Email)
	if err != nil {
		slog.Error("error loading watchlist", "email", user.Email, "error", err)
		symbols = nil // empty watchlist falls back to the general feed
	}

	articles, err := r.builder.BuildFor(ctx, symbols)
	if err != nil {
		slog.Error("error building digest", "email", user.Email, "error", err)
		return res
	}

	res.Articles = articles
	res.Summary = r.summarizer.Summarize(ctx, articles)
	res.Succeeded = true
	return res
}
