package lookup

// Source rows are the per-provider auxiliary tables, already normalized to
// typed records by the transform layer. Each slice may be empty; an absent
// source consolidates to an empty sub-table, never a failure.

// ExternalIDRow carries one provider's external identifiers for a face.
type ExternalIDRow struct {
	ProviderID  string
	Side        string
	Identifiers map[string]string
}

// OrientationRow carries layout orientation metadata for a face.
type OrientationRow struct {
	ProviderID  string
	Side        string
	Orientation string
}

// RankingRow carries the community power/salt scores for an oracle identity.
type RankingRow struct {
	OracleID  string
	Rank      *int
	Saltiness *float64
}

// RulingRow is one dated ruling for an oracle identity.
type RulingRow struct {
	OracleID string
	Date     string
	Text     string
}

// PrintingRow records that a set contains a card with an oracle identity.
// Rows are derived from the base card table, one per card record.
type PrintingRow struct {
	OracleID string
	SetCode  string
}

// SignatureRow carries a community-submitted signature for an oracle
// identity.
type SignatureRow struct {
	OracleID  string
	Signature string
}

// ForeignRow is one non-English edition of a printing.
type ForeignRow struct {
	SetCode      string
	Number       string
	Side         string
	Language     string
	Name         string
	FaceName     string
	Text         string
	Type         string
	FlavorText   string
	MultiverseID string
}

// DuelDeckRow assigns a printing to one side of a two-deck product.
type DuelDeckRow struct {
	SetCode string
	Number  string
	Side    string
}

// MeldGroupRow declares one meld group: the designated result face and its
// component faces.
type MeldGroupRow struct {
	Result string
	Parts  []string
}

// ArchetypeRow places a card name in a curated deck archetype.
type ArchetypeRow struct {
	Name      string
	Archetype string
}

// Sources bundles every auxiliary table feeding consolidation.
type Sources struct {
	ExternalIDs  []ExternalIDRow
	Orientations []OrientationRow
	Rankings     []RankingRow
	Rulings      []RulingRow
	Printings    []PrintingRow
	Signatures   []SignatureRow
	Foreign      []ForeignRow
	DuelDecks    []DuelDeckRow
	MeldGroups   []MeldGroupRow
	Archetypes   []ArchetypeRow
}
