package booster

import (
	"encoding/json"
	"fmt"
)

// Sheet is a named weighted pool of candidate cards for one slot kind.
type Sheet struct {
	// BalanceColors asks the generator to even out color distribution
	// when drawing from this sheet.
	BalanceColors bool `json:"balanceColors,omitempty"`
	// Cards maps card identity to integer pick weight.
	Cards map[string]int `json:"cards"`
	// Foil marks a sheet containing only foil copies.
	Foil bool `json:"foil"`
	// TotalWeight caches the sum of member weights. It is recomputed on
	// parse and after any mutation; input-declared values are never
	// trusted.
	TotalWeight int `json:"totalWeight"`
}

// Recompute refreshes the cached total from the members.
func (s *Sheet) Recompute() {
	total := 0
	for _, w := range s.Cards {
		total += w
	}
	s.TotalWeight = total
}

// Variant is one way a booster of a given name can be composed: sheet pick
// counts plus a selection weight among sibling variants.
type Variant struct {
	// Contents maps sheet name to pick count.
	Contents map[string]int `json:"contents"`
	// Weight is the selection weight among sibling variants.
	Weight int `json:"weight"`
}

// Booster is every way one named booster kind can be composed, plus the
// sheets its variants draw from.
type Booster struct {
	Boosters            []Variant         `json:"boosters"`
	BoostersTotalWeight int               `json:"boostersTotalWeight"`
	Sheets              map[string]*Sheet `json:"sheets"`
}

// Recompute refreshes the booster's cached totals.
func (b *Booster) Recompute() {
	total := 0
	for _, v := range b.Boosters {
		total += v.Weight
	}
	b.BoostersTotalWeight = total
	for _, sheet := range b.Sheets {
		sheet.Recompute()
	}
}

// Config maps booster name (draft, collector, set...) to its composition.
// The nested JSON projection of this structure is what lands inside a
// compiled set object; the flat projection lives in flatten.go. Both are
// views of this one in-memory structure.
type Config map[string]*Booster

// Parse decodes a product's booster configuration blob. A malformed blob
// fails only the product that carried it. Cached totals are recomputed,
// and a variant referencing an undeclared sheet is rejected outright.
func Parse(data []byte) (Config, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed booster configuration: %w", err)
	}

	for name, b := range cfg {
		if b == nil {
			return nil, fmt.Errorf("booster %q: empty configuration", name)
		}
		for _, v := range b.Boosters {
			for sheetName := range v.Contents {
				if _, ok := b.Sheets[sheetName]; !ok {
					return nil, fmt.Errorf("booster %q: variant references undeclared sheet %q", name, sheetName)
				}
			}
		}
		b.Recompute()
	}
	return cfg, nil
}
