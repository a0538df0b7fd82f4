package digest

import (
	"sort"

	"signalist/pkg/news"
)

const maxDigestArticles = 6

// mergeRoundRobin fairly interleaves per-symbol article queues: each round
// visits the symbols in input order and takes at most one article per symbol,
// so a symbol with many articles cannot starve one with few. Queues are read
// through per-symbol cursors and never mutated. The collected articles are
// tagged with their symbol and round, then sorted by recency; the sort is
// stable, so ties keep round-major order.
func mergeRoundRobin(symbols []string, perSymbol map[string][]news.Article, max int) []news.Article {
	cursors := make(map[string]int, len(symbols))
	var collected []news.Article

	for round := 0; len(collected) < max; round++ {
		picked := false
		for _, sym := range symbols {
			queue := perSymbol[sym]
			i := cursors[sym]
			if i >= len(queue) {
				continue
			}
			cursors[sym] = i + 1

			a := queue[i]
			a.IsCompanyNews = true
			a.RelatedSymbol = sym
			a.Round = round
			collected = append(collected, a)
			picked = true

			if len(collected) >= max {
				break
			}
		}
		if !picked {
			break
		}
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].Datetime > collected[j].Datetime
	})

	return collected
}
