package news

import (
	"context"
	"time"
)

// Article is the canonical, validated form of a provider record. It is
// constructed once during a fetch and never mutated afterwards.
type Article struct {
	ID            int64
	Headline      string
	Summary       string
	Source        string
	URL           string
	Datetime      int64
	RelatedSymbol string
	IsCompanyNews bool
	Round         int
}

type StockMatch struct {
	Symbol        string
	Name          string
	DisplaySymbol string
	Type          string
	Exchange      string
}

type StockQuote struct {
	Price         float64
	ChangePercent float64
}

type Source interface {
	CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]Article, error)
	GeneralNews(ctx context.Context) ([]Article, error)
}
