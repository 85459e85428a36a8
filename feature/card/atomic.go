package card

// AtomicCard is the oracle-level view of one face: gameplay text and the
// data that does not vary by printing. One entry exists per distinct oracle
// text variant that was actually printed.
type AtomicCard struct {
	ASCIIName        string
	ColorIdentity    []string
	Colors           []string
	Defense          string
	EdhrecRank       *int
	EdhrecSaltiness  *float64
	FaceManaValue    *float64
	FaceName         string
	FirstPrinting    string
	Hand             string
	Identifiers      map[string]string
	IsFunny          bool
	IsReserved       bool
	Keywords         []string
	Layout           string
	LeadershipSkills *LeadershipSkills
	Legalities       map[string]string
	Life             string
	Loyalty          string
	ManaCost         string
	ManaValue        float64
	Name             string
	Power            string
	Printings        []string
	PurchaseURLs     map[string]string
	RelatedCards     *RelatedCards
	Rulings          []Ruling
	Side             string
	Subtypes         []string
	Supertypes       []string
	Text             string
	Toughness        string
	Type             string
	Types            []string
}

// MarshalJSON renders the atomic card under the field-presence contract.
func (a *AtomicCard) MarshalJSON() ([]byte, error) {
	e := NewEncoder()
	e.String("asciiName", a.ASCIIName)
	e.Strings("colorIdentity", a.ColorIdentity)
	e.Strings("colors", a.Colors)
	e.Float("convertedManaCost", a.ManaValue)
	e.String("defense", a.Defense)
	e.IntPtr("edhrecRank", a.EdhrecRank)
	e.FloatPtr("edhrecSaltiness", a.EdhrecSaltiness)
	e.FloatPtr("faceConvertedManaCost", a.FaceManaValue)
	e.FloatPtr("faceManaValue", a.FaceManaValue)
	e.String("faceName", a.FaceName)
	e.String("firstPrinting", a.FirstPrinting)
	e.String("hand", a.Hand)
	e.StringMap("identifiers", a.Identifiers)
	e.Bool("isFunny", a.IsFunny)
	e.Bool("isReserved", a.IsReserved)
	e.Strings("keywords", a.Keywords)
	e.String("layout", a.Layout)
	e.Object("leadershipSkills", a.LeadershipSkills, a.LeadershipSkills == nil)
	e.StringMap("legalities", a.Legalities)
	e.String("life", a.Life)
	e.String("loyalty", a.Loyalty)
	e.String("manaCost", a.ManaCost)
	e.Float("manaValue", a.ManaValue)
	e.String("name", a.Name)
	e.String("power", a.Power)
	e.Strings("printings", a.Printings)
	e.StringMap("purchaseUrls", a.PurchaseURLs)
	e.Object("relatedCards", a.RelatedCards, a.RelatedCards.Empty())
	e.Rulings("rulings", a.Rulings)
	e.String("side", a.Side)
	e.Strings("subtypes", a.Subtypes)
	e.Strings("supertypes", a.Supertypes)
	e.String("text", a.Text)
	e.String("toughness", a.Toughness)
	e.String("type", a.Type)
	e.Strings("types", a.Types)
	return e.Finish()
}
