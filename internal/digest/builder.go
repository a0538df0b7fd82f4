package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"signalist/pkg/news"
)

const (
	newsWindow       = 5 * 24 * time.Hour
	fetchConcurrency = 4
)

// Builder assembles the per-user article digest: company news per watchlist
// symbol, merged fairly, with the general feed as fallback.
type Builder struct {
	source      news.Source
	window      time.Duration
	maxArticles int
	concurrency int
	now         func() time.Time
}

func NewBuilder(source news.Source) *Builder {
	return &Builder{
		source:      source,
		window:      newsWindow,
		maxArticles: maxDigestArticles,
		concurrency: fetchConcurrency,
		now:         time.Now,
	}
}

// BuildFor returns at most maxArticles articles for the given watchlist
// symbols. An empty symbol set, or symbol fetches that all come back empty,
// falls back to the deduplicated general feed. Per-symbol fetch failures
// degrade to empty result sets; only a failed general-feed fetch is an error.
func (b *Builder) BuildFor(ctx context.Context, symbols []string) ([]news.Article, error) {
	clean := normalizeSymbols(symbols)

	if len(clean) > 0 {
		perSymbol := b.fetchPerSymbol(ctx, clean)
		merged := mergeRoundRobin(clean, perSymbol, b.maxArticles)
		if len(merged) > 0 {
			return merged, nil
		}
	}

	general, err := b.source.GeneralNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch general news: %w", err)
	}

	return dedupeGeneral(general, b.maxArticles), nil
}

func (b *Builder) fetchPerSymbol(ctx context.Context, symbols []string) map[string][]news.Article {
	to := b.now()
	from := to.Add(-b.window)

	results := make([][]news.Article, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, sym := range symbols {
		g.Go(func() error {
			articles, err := b.source.CompanyNews(gctx, sym, from, to)
			if err != nil {
				slog.Error("error fetching company news", "symbol", sym, "error", err)
				return nil // degrade to an empty queue for this symbol
			}
			results[i] = articles
			return nil
		})
	}
	g.Wait()

	perSymbol := make(map[string][]news.Article, len(symbols))
	for i, sym := range symbols {
		perSymbol[sym] = results[i]
	}
	return perSymbol
}

func normalizeSymbols(symbols []string) []string {
	clean := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		clean = append(clean, s)
	}
	return clean
}
