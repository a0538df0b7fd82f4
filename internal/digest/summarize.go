package digest

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"signalist/pkg/llm"
	"signalist/pkg/news"
)

// inferTimeout bounds every text-generation call so a hung model request
// cannot stall the batch.
const inferTimeout = 60 * time.Second

// FallbackNewsContent is the degraded-mode briefing used whenever text
// generation fails or returns nothing usable.
const FallbackNewsContent = "We were unable to generate your personalized news summary today. Please check back tomorrow for your market briefing."

// Summarizer turns an article set into briefing prose. It never fails: any
// generation problem yields FallbackNewsContent so one recipient's summary
// can never abort the batch.
type Summarizer struct {
	llm llm.Inferencer
}

func NewSummarizer(inferencer llm.Inferencer) *Summarizer {
	return &Summarizer{llm: inferencer}
}

func (s *Summarizer) Summarize(ctx context.Context, articles []news.Article) string {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		slog.Error("error serializing articles for summary", "error", err)
		return FallbackNewsContent
	}

	prompt := strings.Replace(llm.NewsSummaryPrompt, "{{newsData}}", string(data), 1)

	ctx, cancel := context.WithTimeout(ctx, inferTimeout)
	defer cancel()

	text, err := s.llm.Infer(ctx, prompt)
	if err != nil {
		slog.Error("error generating news summary", "error", err)
		return FallbackNewsContent
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("empty news summary from model, using fallback")
		return FallbackNewsContent
	}

	return text
}
