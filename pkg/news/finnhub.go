package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

const (
	defaultCacheTTL = 5 * time.Minute
	defaultTimeout  = 10 * time.Second
)

// Config carries the explicit cache and request settings the client is
// constructed with.
type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}

type FinnhubClient struct {
	client  *finnhub.DefaultApiService
	cache   Cache
	ttl     time.Duration
	timeout time.Duration
}

func NewFinnhubClient(apiKey string, cache Cache, cfg Config) (*FinnhubClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("finnhub API key is not configured")
	}

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	apiCfg := finnhub.NewConfiguration()
	apiCfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(apiCfg).DefaultApi

	return &FinnhubClient{
		client:  client,
		cache:   cache,
		ttl:     cfg.CacheTTL,
		timeout: cfg.Timeout,
	}, nil
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]Article, error) {
	fromDate := from.Format("2006-01-02")
	toDate := to.Format("2006-01-02")
	key := fmt.Sprintf("signalist:news:company:%s:%s:%s", symbol, fromDate, toDate)

	if articles, ok := c.cachedArticles(ctx, key); ok {
		return articles, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, _, err := c.client.CompanyNews(ctx).Symbol(symbol).From(fromDate).To(toDate).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub company news for %s: %w", symbol, err)
	}

	raw := make([]finnhub.MarketNews, len(res))
	for i, n := range res {
		raw[i] = finnhub.MarketNews(n)
	}
	articles := normalizeArticles(raw)
	c.storeArticles(ctx, key, articles)
	return articles, nil
}

func (c *FinnhubClient) GeneralNews(ctx context.Context) ([]Article, error) {
	const key = "signalist:news:general"

	if articles, ok := c.cachedArticles(ctx, key); ok {
		return articles, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub general news: %w", err)
	}

	articles := normalizeArticles(res)
	c.storeArticles(ctx, key, articles)
	return articles, nil
}

func (c *FinnhubClient) SearchSymbols(ctx context.Context, query string) ([]StockMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, _, err := c.client.SymbolSearch(ctx).Q(query).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub symbol search: %w", err)
	}

	var matches []StockMatch
	for _, item := range res.GetResult() {
		if item.Symbol == nil || *item.Symbol == "" || item.Description == nil || *item.Description == "" {
			continue
		}

		m := StockMatch{
			Symbol:   *item.Symbol,
			Name:     *item.Description,
			Exchange: extractExchange(*item.Symbol),
		}
		if item.DisplaySymbol != nil {
			m.DisplaySymbol = *item.DisplaySymbol
		}
		if item.Type != nil {
			m.Type = *item.Type
		}
		matches = append(matches, m)
	}

	return matches, nil
}

func (c *FinnhubClient) Quote(ctx context.Context, symbol string) (*StockQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, _, err := c.client.Quote(ctx).Symbol(strings.ToUpper(symbol)).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub quote for %s: %w", symbol, err)
	}

	if res.C == nil || res.Dp == nil {
		return nil, nil
	}

	return &StockQuote{
		Price:         float64(*res.C),
		ChangePercent: float64(*res.Dp),
	}, nil
}

func (c *FinnhubClient) cachedArticles(ctx context.Context, key string) ([]Article, bool) {
	if c.cache == nil {
		return nil, false
	}

	raw, ok := c.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}

	var articles []Article
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		slog.Warn("invalid cached news payload, refetching", "key", key, "error", err)
		return nil, false
	}
	return articles, true
}

func (c *FinnhubClient) storeArticles(ctx context.Context, key string, articles []Article) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(articles)
	if err != nil {
		slog.Warn("error encoding news for cache", "key", key, "error", err)
		return
	}
	c.cache.Set(ctx, key, string(raw), c.ttl)
}

// normalizeArticles converts raw provider records into Articles, dropping
// any record missing id, headline, url, datetime, or source.
func normalizeArticles(raw []finnhub.MarketNews) []Article {
	articles := make([]Article, 0, len(raw))
	for _, n := range raw {
		if !validArticle(n) {
			continue
		}

		a := Article{
			ID:       *n.Id,
			Headline: *n.Headline,
			URL:      *n.Url,
			Datetime: *n.Datetime,
			Source:   *n.Source,
		}
		if n.Summary != nil {
			a.Summary = *n.Summary
		}
		articles = append(articles, a)
	}
	return articles
}

func validArticle(n finnhub.MarketNews) bool {
	return n.Id != nil && *n.Id != 0 &&
		n.Headline != nil && strings.TrimSpace(*n.Headline) != "" &&
		n.Url != nil && *n.Url != "" &&
		n.Datetime != nil && *n.Datetime != 0 &&
		n.Source != nil && *n.Source != ""
}

func extractExchange(symbol string) string {
	if i := strings.LastIndex(symbol, "."); i >= 0 && i < len(symbol)-1 {
		return symbol[i+1:]
	}
	return "US"
}
