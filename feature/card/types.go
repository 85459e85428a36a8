package card

// Ruling is one dated rules clarification attached to an oracle identity.
type Ruling struct {
	Date string
	Text string
}

// ForeignEntry is one non-English edition of a printing. UUID is derived
// from the default-language face identity, so translations stay anchored to
// the printing they translate.
type ForeignEntry struct {
	FaceName    string
	FlavorText  string
	Identifiers map[string]string
	Language    string
	Name        string
	Text        string
	Type        string
	UUID        string
}

// LeadershipSkills records which multiplayer formats a card may lead.
// All three flags are emitted explicitly; absence of the object means the
// card can lead nothing.
type LeadershipSkills struct {
	Brawl       bool `json:"brawl"`
	Commander   bool `json:"commander"`
	Oathbreaker bool `json:"oathbreaker"`
}

// RelatedCards links a card to entities outside its own face group.
type RelatedCards struct {
	ReverseRelated []string
	Spellbook      []string
}

// Empty reports whether the object would serialize to nothing.
func (r *RelatedCards) Empty() bool {
	return r == nil || (len(r.ReverseRelated) == 0 && len(r.Spellbook) == 0)
}

// MarshalJSON applies the field-presence contract to the nested object.
func (r *RelatedCards) MarshalJSON() ([]byte, error) {
	e := NewEncoder()
	e.Strings("reverseRelated", r.ReverseRelated)
	e.Strings("spellbook", r.Spellbook)
	return e.Finish()
}
