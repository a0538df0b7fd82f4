package digest

import (
	"fmt"

	"signalist/pkg/news"
)

// generalScanCap bounds how many distinct candidates the general-feed scan
// collects before truncation, independent of the digest cap.
const generalScanCap = 20

// dedupeGeneral collapses general-feed articles sharing the id-url-headline
// identity key, first occurrence winning. Provider order is preserved; the
// general path is intentionally not re-sorted by datetime.
func dedupeGeneral(articles []news.Article, max int) []news.Article {
	seen := make(map[string]struct{}, len(articles))
	var unique []news.Article

	for _, a := range articles {
		key := fmt.Sprintf("%d-%s-%s", a.ID, a.URL, a.Headline)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, a)
		if len(unique) >= generalScanCap {
			break
		}
	}

	if len(unique) > max {
		unique = unique[:max]
	}

	for i := range unique {
		unique[i].IsCompanyNews = false
		unique[i].RelatedSymbol = ""
		unique[i].Round = i
	}

	return unique
}
