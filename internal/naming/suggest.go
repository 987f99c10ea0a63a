package naming

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// SuggestionThreshold is the minimum similarity between a field name and an
// accessor's base name for the accessor to be suggested without a fuzzy hit.
const SuggestionThreshold = 0.6

// Suggestion is an accessor that nearly, but not exactly, follows the
// naming convention for a field.
type Suggestion struct {
	Method string
	Score  float64
}

// SuggestAccessors returns accessor names from candidates that look like
// they were meant for field, best first. Exact convention matches are
// excluded since those resolve on their own. A limit <= 0 means no limit.
func SuggestAccessors(field string, candidates []string, limit int) []Suggestion {
	if field == "" || len(candidates) == 0 {
		return nil
	}

	exact := make(map[string]struct{}, 2)
	for _, name := range AccessorNames(field) {
		exact[name] = struct{}{}
	}

	var (
		names []string
		bases []string
	)

	for _, candidate := range candidates {
		if _, ok := exact[candidate]; ok {
			continue
		}

		names = append(names, candidate)
		bases = append(bases, NormalizeIdent(TrimAccessorPrefix(candidate)))
	}

	normField := NormalizeIdent(field)
	hits := make(map[int]struct{})

	for _, m := range fuzzy.Find(normField, bases) {
		hits[m.Index] = struct{}{}
	}

	var suggestions []Suggestion

	for i, name := range names {
		score := Similarity(normField, bases[i])

		_, fuzzyHit := hits[i]
		if !fuzzyHit && score < SuggestionThreshold {
			continue
		}

		suggestions = append(suggestions, Suggestion{Method: name, Score: score})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}

		return suggestions[i].Method < suggestions[j].Method
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions
}
