package set

import "github.com/mtgjson/mtgjson-sub003/feature/card"

// Formats are the constructed formats a filtered catalog pair is emitted
// for.
var Formats = []string{"legacy", "modern", "pauper", "pioneer", "standard", "vintage"}

func legalIn(legalities map[string]string, format string) bool {
	switch legalities[format] {
	case "Legal", "Restricted":
		return true
	}
	return false
}

// FilterSet returns a copy of the set holding only the cards playable in
// the given format, or nil when none are. The cards themselves are shared,
// not copied; nothing is mutated.
func FilterSet(s *Set, format string) *Set {
	cards := []*card.Card{}
	for _, c := range s.Cards {
		if legalIn(c.Legalities, format) {
			cards = append(cards, c)
		}
	}
	if len(cards) == 0 {
		return nil
	}

	filtered := *s
	filtered.Cards = cards
	return &filtered
}

// FilterAtomic returns the oracle-grouped entries playable in the given
// format.
func FilterAtomic(data map[string][]*card.AtomicCard, format string) map[string][]*card.AtomicCard {
	out := make(map[string][]*card.AtomicCard)
	for name, atoms := range data {
		kept := []*card.AtomicCard{}
		for _, a := range atoms {
			if legalIn(a.Legalities, format) {
				kept = append(kept, a)
			}
		}
		if len(kept) > 0 {
			out[name] = kept
		}
	}
	return out
}
