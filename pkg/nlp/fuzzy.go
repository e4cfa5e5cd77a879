package nlp

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultMatchThreshold is the minimum token-sort-ratio score (0-100)
// for a candidate to count as a match.
const DefaultMatchThreshold = 60

// FindBestMatch returns the highest-scoring candidate for the query, or
// ok=false when the query or candidate list is empty or nothing clears
// the threshold. Scoring is token-order-insensitive: spoken commands
// frequently reorder words relative to the stored title ("хлеб и молоко
// купить" must still find "Купить молоко и хлеб").
func FindBestMatch(query string, candidates []string) (Match, bool) {
	return FindBestMatchThreshold(query, candidates, DefaultMatchThreshold)
}

// FindBestMatchThreshold is FindBestMatch with an explicit cutoff.
func FindBestMatchThreshold(query string, candidates []string, threshold int) (Match, bool) {
	matches := findMatches(query, candidates, 1, threshold)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// FindMatches returns up to limit candidates scoring at or above the
// default threshold, best first. Each match keeps the candidate's
// original index so callers can recover the record behind a duplicated
// title.
func FindMatches(query string, candidates []string, limit int) []Match {
	return findMatches(query, candidates, limit, DefaultMatchThreshold)
}

func findMatches(query string, candidates []string, limit, threshold int) []Match {
	if query == "" || len(candidates) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(candidates))
	for i, candidate := range candidates {
		// forceAscii off: the titles are mostly Cyrillic and must
		// survive the library's normalization pass.
		score := fuzzy.TokenSortRatio(query, candidate, false, true)
		if score < threshold {
			continue
		}
		matches = append(matches, Match{Title: candidate, Score: score, Index: i})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
