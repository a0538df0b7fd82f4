package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"signalist/pkg/news"
)

type DigestBuilder interface {
	BuildFor(ctx context.Context, symbols []string) ([]news.Article, error)
}

type StockDirectory interface {
	SearchSymbols(ctx context.Context, query string) ([]news.StockMatch, error)
	Quote(ctx context.Context, symbol string) (*news.StockQuote, error)
}

type NewsHandler struct {
	builder DigestBuilder
	stocks  StockDirectory
}

func NewNewsHandler(builder DigestBuilder, stocks StockDirectory) *NewsHandler {
	return &NewsHandler{builder: builder, stocks: stocks}
}

// GetNews serves an ad-hoc digest for the symbols in the query string; with
// no symbols it serves the general feed.
func (h *NewsHandler) GetNews(c *gin.Context) {
	var symbols []string
	if raw := c.Query("symbols"); raw != "" {
		symbols = strings.Split(raw, ",")
	}

	articles, err := h.builder.BuildFor(c.Request.Context(), symbols)
	if err != nil {
		slog.Error("error building news digest", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	res := NewsResponse{Articles: []ArticleResponse{}, Total: len(articles)}
	for _, a := range articles {
		res.Articles = append(res.Articles, ArticleResponse{
			ID:            a.ID,
			Headline:      a.Headline,
			Summary:       a.Summary,
			Source:        a.Source,
			URL:           a.URL,
			Datetime:      a.Datetime,
			RelatedSymbol: a.RelatedSymbol,
			IsCompanyNews: a.IsCompanyNews,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) SearchStocks(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, SearchResponse{Matches: []StockMatchResponse{}})
		return
	}

	matches, err := h.stocks.SearchSymbols(c.Request.Context(), query)
	if err != nil {
		slog.Error("error searching stocks", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	res := SearchResponse{Matches: []StockMatchResponse{}, Total: len(matches)}
	for _, m := range matches {
		res.Matches = append(res.Matches, StockMatchResponse{
			Symbol:        m.Symbol,
			Name:          m.Name,
			DisplaySymbol: m.DisplaySymbol,
			Type:          m.Type,
			Exchange:      m.Exchange,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetQuote(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbol"})
		return
	}

	quote, err := h.stocks.Quote(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("error fetching quote", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Quote failed"})
		return
	}

	if quote == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No quote for symbol"})
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{
		Symbol:        symbol,
		Price:         quote.Price,
		ChangePercent: quote.ChangePercent,
	})
}
