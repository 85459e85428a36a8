package lookup

// FaceKey joins per-provider face data: the provider's per-printing
// identifier plus the side letter for multi-face cards.
type FaceKey struct {
	ProviderID string
	Side       string
}

// FaceEntry is the consolidated row for one face key.
type FaceEntry struct {
	Identifiers map[string]string
	Orientation string
}

// OracleEntry is the consolidated row for one oracle identity. Rulings are
// kept newest-first; Printings is the sorted, deduplicated list of set
// codes containing a card with this identity.
type OracleEntry struct {
	EdhrecRank      *int
	EdhrecSaltiness *float64
	Rulings         []RulingRow
	Printings       []string
	Signature       string
}

// PrintKey joins printing-scoped data: set code plus collector number.
type PrintKey struct {
	SetCode string
	Number  string
}

// PrintEntry is the consolidated row for one printing key.
type PrintEntry struct {
	Foreign  []ForeignRow
	DuelDeck string
}

// NameEntry is the consolidated row for one display name. MeldGroup lists
// the group's component faces in fixed order with the result face last.
type NameEntry struct {
	MeldResult string
	MeldGroup  []string
	Archetypes []string
}

// Tables is the read-only context of canonical lookup tables threaded
// through the transform and assembler. It is built once per run and shared
// across workers without synchronization.
type Tables struct {
	Faces     map[FaceKey]*FaceEntry
	Oracle    map[string]*OracleEntry
	Printings map[PrintKey]*PrintEntry
	Names     map[string]*NameEntry
}

// Face returns the consolidated face entry, or nil when none exists.
func (t *Tables) Face(providerID, side string) *FaceEntry {
	return t.Faces[FaceKey{ProviderID: providerID, Side: side}]
}

// ByOracle returns the consolidated oracle entry, or nil when none exists.
func (t *Tables) ByOracle(oracleID string) *OracleEntry {
	return t.Oracle[oracleID]
}

// Printing returns the consolidated printing entry, or nil when none
// exists.
func (t *Tables) Printing(setCode, number string) *PrintEntry {
	return t.Printings[PrintKey{SetCode: setCode, Number: number}]
}

// ByName returns the consolidated name entry, or nil when none exists.
func (t *Tables) ByName(name string) *NameEntry {
	return t.Names[name]
}
