package booster

import "sort"

// The flat projection: four normalized row kinds suitable for relational
// or columnar export. Flatten and Reconstruct are exact inverses so the
// nested and flat forms never drift apart.

// SheetRow is one sheet declaration.
type SheetRow struct {
	SetCode       string
	BoosterName   string
	SheetName     string
	BalanceColors bool
	Foil          bool
	TotalWeight   int
}

// SheetCardRow is one weighted sheet member.
type SheetCardRow struct {
	SetCode     string
	BoosterName string
	SheetName   string
	CardUUID    string
	Weight      int
}

// VariantRow is one booster variant with its selection weight.
type VariantRow struct {
	SetCode      string
	BoosterName  string
	VariantIndex int
	Weight       int
}

// VariantContentRow is one slot requirement of a variant.
type VariantContentRow struct {
	SetCode      string
	BoosterName  string
	VariantIndex int
	SheetName    string
	Count        int
}

// Rows bundles the flat projection of one or more configurations.
type Rows struct {
	Sheets          []SheetRow
	SheetCards      []SheetCardRow
	Variants        []VariantRow
	VariantContents []VariantContentRow
}

// Flatten projects a set's booster configuration into normalized rows in
// deterministic order (booster name, sheet name, member key, variant
// index).
func Flatten(setCode string, cfg Config) Rows {
	var rows Rows

	for _, boosterName := range sortedKeys(cfg) {
		b := cfg[boosterName]

		sheetNames := make([]string, 0, len(b.Sheets))
		for name := range b.Sheets {
			sheetNames = append(sheetNames, name)
		}
		sort.Strings(sheetNames)

		for _, sheetName := range sheetNames {
			sheet := b.Sheets[sheetName]
			rows.Sheets = append(rows.Sheets, SheetRow{
				SetCode:       setCode,
				BoosterName:   boosterName,
				SheetName:     sheetName,
				BalanceColors: sheet.BalanceColors,
				Foil:          sheet.Foil,
				TotalWeight:   sheet.TotalWeight,
			})

			for _, uuid := range sortedKeys(sheet.Cards) {
				rows.SheetCards = append(rows.SheetCards, SheetCardRow{
					SetCode:     setCode,
					BoosterName: boosterName,
					SheetName:   sheetName,
					CardUUID:    uuid,
					Weight:      sheet.Cards[uuid],
				})
			}
		}

		for i, v := range b.Boosters {
			rows.Variants = append(rows.Variants, VariantRow{
				SetCode:      setCode,
				BoosterName:  boosterName,
				VariantIndex: i,
				Weight:       v.Weight,
			})
			for _, sheetName := range sortedKeys(v.Contents) {
				rows.VariantContents = append(rows.VariantContents, VariantContentRow{
					SetCode:      setCode,
					BoosterName:  boosterName,
					VariantIndex: i,
					SheetName:    sheetName,
					Count:        v.Contents[sheetName],
				})
			}
		}
	}

	return rows
}

// Append merges another flat projection into this one.
func (r *Rows) Append(other Rows) {
	r.Sheets = append(r.Sheets, other.Sheets...)
	r.SheetCards = append(r.SheetCards, other.SheetCards...)
	r.Variants = append(r.Variants, other.Variants...)
	r.VariantContents = append(r.VariantContents, other.VariantContents...)
}

// Reconstruct rebuilds nested configurations per set code from flat rows.
// Totals are recomputed from the members rather than read back.
func Reconstruct(rows Rows) map[string]Config {
	out := make(map[string]Config)

	booster := func(setCode, name string) *Booster {
		cfg, ok := out[setCode]
		if !ok {
			cfg = make(Config)
			out[setCode] = cfg
		}
		b, ok := cfg[name]
		if !ok {
			b = &Booster{Sheets: make(map[string]*Sheet)}
			cfg[name] = b
		}
		return b
	}

	for _, row := range rows.Sheets {
		booster(row.SetCode, row.BoosterName).Sheets[row.SheetName] = &Sheet{
			BalanceColors: row.BalanceColors,
			Foil:          row.Foil,
		}
	}
	for _, row := range rows.SheetCards {
		sheet := booster(row.SetCode, row.BoosterName).Sheets[row.SheetName]
		if sheet == nil {
			continue
		}
		if sheet.Cards == nil {
			sheet.Cards = make(map[string]int)
		}
		sheet.Cards[row.CardUUID] = row.Weight
	}
	for _, row := range rows.Variants {
		b := booster(row.SetCode, row.BoosterName)
		for len(b.Boosters) <= row.VariantIndex {
			b.Boosters = append(b.Boosters, Variant{Contents: make(map[string]int)})
		}
		b.Boosters[row.VariantIndex].Weight = row.Weight
	}
	for _, row := range rows.VariantContents {
		b := booster(row.SetCode, row.BoosterName)
		for len(b.Boosters) <= row.VariantIndex {
			b.Boosters = append(b.Boosters, Variant{Contents: make(map[string]int)})
		}
		if b.Boosters[row.VariantIndex].Contents == nil {
			b.Boosters[row.VariantIndex].Contents = make(map[string]int)
		}
		b.Boosters[row.VariantIndex].Contents[row.SheetName] = row.Count
	}

	for _, cfg := range out {
		for _, b := range cfg {
			b.Recompute()
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
