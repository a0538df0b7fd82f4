package digest

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"signalist/pkg/news"
)

func companyArticles(symbol string, datetimes ...int64) []news.Article {
	articles := make([]news.Article, len(datetimes))
	for i, dt := range datetimes {
		articles[i] = news.Article{
			ID:       int64(i + 1),
			Headline: symbol + " headline",
			URL:      "https://example.com/" + symbol,
			Datetime: dt,
			Source:   "Reuters",
		}
	}
	return articles
}

func TestMergeRoundRobin_Fairness(t *testing.T) {
	perSymbol := map[string][]news.Article{
		"S1": companyArticles("S1", 110, 109, 108, 107, 106, 105, 104, 103, 102, 101),
		"S2": companyArticles("S2", 50),
	}

	merged := mergeRoundRobin([]string{"S1", "S2"}, perSymbol, 6)

	assert.Equal(t, 6, len(merged))

	counts := map[string]int{}
	for _, a := range merged {
		counts[a.RelatedSymbol]++
	}
	assert.Equal(t, 5, counts["S1"])
	assert.Equal(t, 1, counts["S2"])
}

func TestMergeRoundRobin_CapAndOrdering(t *testing.T) {
	perSymbol := map[string][]news.Article{
		"AAPL": companyArticles("AAPL", 10, 40, 20, 90, 30, 80, 70),
		"MSFT": companyArticles("MSFT", 60, 50, 15, 25),
	}

	merged := mergeRoundRobin([]string{"AAPL", "MSFT"}, perSymbol, 6)

	assert.Equal(t, 6, len(merged))
	for i := 1; i < len(merged); i++ {
		if merged[i].Datetime > merged[i-1].Datetime {
			t.Fatalf("datetime increased at index %d: %d after %d", i, merged[i].Datetime, merged[i-1].Datetime)
		}
	}
}

func TestMergeRoundRobin_Tagging(t *testing.T) {
	perSymbol := map[string][]news.Article{
		"AAPL": companyArticles("AAPL", 100, 100),
	}

	merged := mergeRoundRobin([]string{"AAPL"}, perSymbol, 6)

	assert.Equal(t, 2, len(merged))
	for _, a := range merged {
		assert.Equal(t, true, a.IsCompanyNews)
		assert.Equal(t, "AAPL", a.RelatedSymbol)
	}
	// Equal datetimes keep round-major insertion order.
	assert.Equal(t, 0, merged[0].Round)
	assert.Equal(t, 1, merged[1].Round)
}

// The reference walk-through: AAPL has five articles dated 5..1 days ago,
// MSFT one dated 3 days ago, cap 6. Round-robin collects all six, then the
// recency sort interleaves them; the 3-days-ago tie keeps MSFT first because
// it was picked in an earlier round.
func TestMergeRoundRobin_ReferenceExample(t *testing.T) {
	const day = int64(86400)
	base := int64(1700000000)
	daysAgo := func(n int64) int64 { return base - n*day }

	perSymbol := map[string][]news.Article{
		"AAPL": companyArticles("AAPL", daysAgo(5), daysAgo(4), daysAgo(3), daysAgo(2), daysAgo(1)),
		"MSFT": companyArticles("MSFT", daysAgo(3)),
	}

	merged := mergeRoundRobin([]string{"AAPL", "MSFT"}, perSymbol, 6)

	assert.Equal(t, 6, len(merged))

	wantSymbols := []string{"AAPL", "AAPL", "MSFT", "AAPL", "AAPL", "AAPL"}
	wantDatetimes := []int64{daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(3), daysAgo(4), daysAgo(5)}
	for i := range merged {
		assert.Equal(t, wantSymbols[i], merged[i].RelatedSymbol)
		assert.Equal(t, wantDatetimes[i], merged[i].Datetime)
	}
}

func TestMergeRoundRobin_AllQueuesEmpty(t *testing.T) {
	merged := mergeRoundRobin([]string{"AAPL", "MSFT"}, map[string][]news.Article{}, 6)
	assert.Equal(t, 0, len(merged))
}
