package nlp

import (
	"sort"
	"strings"
	"time"
)

// edgeFillers are prepositions and bare date words stripped from the
// edges of the remaining name tokens. The upstream recognizer folds the
// meaning of words like "завтра" into the entity value without always
// including the word itself in the entity's token span.
var edgeFillers = map[string]struct{}{
	"на": {}, "с": {}, "в": {}, "до": {}, "по": {}, "к": {},
	"завтра": {}, "сегодня": {}, "послезавтра": {}, "вчера": {},
}

// DefaultCommandTokens is the number of leading command tokens skipped
// during extraction ("создай задачу" = 2 tokens).
const DefaultCommandTokens = 2

// ExtractDates scans recognized datetime entities in a tokenized
// utterance, builds a task name with the entity tokens removed, and
// resolves up to two entities into a start/end pair.
//
// Entities whose span begins inside the leading command tokens are
// ignored. When two entities are present, the second is resolved against
// the first's resolved instant, so a bare time-of-day inherits the date
// established by the first entity ("завтра с 19:00 до 21:30" yields two
// moments on the same day). Resolution failures contribute nothing;
// this function never fails.
func ExtractDates(tokens []string, entities []Entity, commandTokens int, now time.Time) ExtractedDates {
	kept := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if e.Type != EntityTypeDateTime {
			continue
		}
		if e.Tokens.Start < commandTokens {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Tokens.Start < kept[j].Tokens.Start
	})

	covered := make(map[int]struct{})
	for _, e := range kept {
		for i := e.Tokens.Start; i < e.Tokens.End; i++ {
			covered[i] = struct{}{}
		}
	}

	var nameTokens []string
	for i := commandTokens; i < len(tokens); i++ {
		if _, ok := covered[i]; ok {
			continue
		}
		nameTokens = append(nameTokens, tokens[i])
	}
	nameTokens = stripEdgeFillers(nameTokens)

	out := ExtractedDates{TaskName: strings.Join(nameTokens, " ")}

	if len(kept) >= 1 {
		if start, err := Resolve(kept[0].Value, now); err == nil {
			out.Start = &start
		}
	}

	if len(kept) >= 2 {
		ref := now
		if out.Start != nil && out.Start.HasClock {
			ref = out.Start.Time
		}
		if end, err := Resolve(kept[len(kept)-1].Value, ref); err == nil {
			out.End = &end
		}
	}

	return out
}

func stripEdgeFillers(tokens []string) []string {
	for len(tokens) > 0 {
		if _, ok := edgeFillers[tokens[len(tokens)-1]]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	for len(tokens) > 0 {
		if _, ok := edgeFillers[tokens[0]]; !ok {
			break
		}
		tokens = tokens[1:]
	}
	return tokens
}
