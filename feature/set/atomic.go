package set

import (
	"sort"
	"sync"

	"github.com/mtgjson/mtgjson-sub003/feature/card"
)

// AtomicIndex accumulates the oracle-grouped view across sets: one entry
// per name, one sub-entry per distinct oracle text variant actually
// printed. Sets may be fed from concurrent writers; the result is
// independent of feed order.
type AtomicIndex struct {
	mu       sync.Mutex
	variants map[string]*atomicVariant
}

type atomicVariant struct {
	name string
	atom *card.AtomicCard
	// protoKey orders the printings that contributed the prototype so
	// concurrent Add calls converge on one representative.
	protoKey string
	// first non-reprint printing, tracked by release date
	firstCode string
	firstDate string
}

// NewAtomicIndex returns an empty index.
func NewAtomicIndex() *AtomicIndex {
	return &AtomicIndex{variants: make(map[string]*atomicVariant)}
}

// Add folds one compiled set into the index.
func (x *AtomicIndex) Add(s *Set) {
	x.mu.Lock()
	defer x.mu.Unlock()

	for _, c := range s.Cards {
		key := c.Name + "\x1e" + c.FaceName + "\x1e" + c.Text
		protoKey := c.SetCode + "\x1e" + c.Number + "\x1e" + c.Side

		v, ok := x.variants[key]
		if !ok {
			v = &atomicVariant{name: c.Name}
			x.variants[key] = v
		}
		if v.atom == nil || protoKey < v.protoKey {
			v.atom = atomize(c)
			v.protoKey = protoKey
		}
		if !c.IsReprint && (v.firstDate == "" || s.ReleaseDate < v.firstDate ||
			(s.ReleaseDate == v.firstDate && s.Code < v.firstCode)) {
			v.firstCode = s.Code
			v.firstDate = s.ReleaseDate
		}
	}
}

// Build renders the accumulated view as name to variant list, variants in
// deterministic order.
func (x *AtomicIndex) Build() map[string][]*card.AtomicCard {
	x.mu.Lock()
	defer x.mu.Unlock()

	out := make(map[string][]*card.AtomicCard)
	for _, v := range x.variants {
		atom := v.atom
		atom.FirstPrinting = v.firstCode
		out[v.name] = append(out[v.name], atom)
	}
	for _, atoms := range out {
		sort.Slice(atoms, func(i, j int) bool {
			if atoms[i].Side != atoms[j].Side {
				return atoms[i].Side < atoms[j].Side
			}
			if atoms[i].FaceName != atoms[j].FaceName {
				return atoms[i].FaceName < atoms[j].FaceName
			}
			return atoms[i].Text < atoms[j].Text
		})
	}
	return out
}

// atomize projects a printed card down to its oracle-level fields.
// Printing-specific identifiers and purchase links are left out; the
// printings list is already the consolidated cross-set one.
func atomize(c *card.Card) *card.AtomicCard {
	a := &card.AtomicCard{
		ASCIIName:        c.ASCIIName,
		ColorIdentity:    c.ColorIdentity,
		Colors:           c.Colors,
		Defense:          c.Defense,
		EdhrecRank:       c.EdhrecRank,
		EdhrecSaltiness:  c.EdhrecSaltiness,
		FaceManaValue:    c.FaceManaValue,
		FaceName:         c.FaceName,
		Hand:             c.Hand,
		Identifiers:      map[string]string{},
		IsFunny:          c.IsFunny,
		IsReserved:       c.IsReserved,
		Keywords:         c.Keywords,
		Layout:           c.Layout,
		LeadershipSkills: c.LeadershipSkills,
		Legalities:       c.Legalities,
		Life:             c.Life,
		Loyalty:          c.Loyalty,
		ManaCost:         c.ManaCost,
		ManaValue:        c.ManaValue,
		Name:             c.Name,
		Power:            c.Power,
		Printings:        c.Printings,
		PurchaseURLs:     map[string]string{},
		RelatedCards:     c.RelatedCards,
		Rulings:          c.Rulings,
		Side:             c.Side,
		Subtypes:         c.Subtypes,
		Supertypes:       c.Supertypes,
		Text:             c.Text,
		Toughness:        c.Toughness,
		Type:             c.Type,
		Types:            c.Types,
	}
	if id, ok := c.Identifiers["scryfallOracleId"]; ok {
		a.Identifiers["scryfallOracleId"] = id
	}
	return a
}
