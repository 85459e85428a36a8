package card

// Card is one printed face of a card in one set. Fields mirror the output
// schema; which of them are emitted, omitted, or defaulted is decided by
// the contract tables in contract.go, never here.
type Card struct {
	Artist                  string
	ArtistIDs               []string
	ASCIIName               string
	Availability            []string
	BoosterTypes            []string
	BorderColor             string
	CardParts               []string
	ColorIdentity           []string
	ColorIndicator          []string
	Colors                  []string
	Defense                 string
	DuelDeck                string
	EdhrecRank              *int
	EdhrecSaltiness         *float64
	FaceManaValue           *float64
	FaceName                string
	Finishes                []string
	FlavorName              string
	FlavorText              string
	ForeignData             []ForeignEntry
	FrameEffects            []string
	FrameVersion            string
	Hand                    string
	HasAlternativeDeckLimit bool
	HasContentWarning       bool
	HasFoil                 bool
	HasNonFoil              bool
	Identifiers             map[string]string
	IsAlternative           bool
	IsFullArt               bool
	IsFunny                 bool
	IsOnlineOnly            bool
	IsOversized             bool
	IsPromo                 bool
	IsRebalanced            bool
	IsReprint               bool
	IsReserved              bool
	IsStarter               bool
	IsStorySpotlight        bool
	IsTextless              bool
	IsTimeshifted           bool
	Keywords                []string
	Language                string
	Layout                  string
	LeadershipSkills        *LeadershipSkills
	Legalities              map[string]string
	Life                    string
	Loyalty                 string
	ManaCost                string
	ManaValue               float64
	Name                    string
	Number                  string
	OriginalPrintings       []string
	OriginalReleaseDate     string
	OriginalText            string
	OriginalType            string
	OtherFaceIDs            []string
	Power                   string
	Printings               []string
	PromoTypes              []string
	PurchaseURLs            map[string]string
	Rarity                  string
	RebalancedPrintings     []string
	RelatedCards            *RelatedCards
	Rulings                 []Ruling
	SecurityStamp           string
	SetCode                 string
	Side                    string
	Signature               string
	Subtypes                []string
	Supertypes              []string
	Text                    string
	Toughness               string
	Type                    string
	Types                   []string
	UUID                    string
	Variations              []string
	Watermark               string
}

// deckExtra carries the two fields a deck listing adds over the card it
// references.
type deckExtra struct {
	Count  int
	IsFoil bool
}

// encodeCard feeds the card's fields to the encoder in output (alphabetical)
// key order. extra is non-nil only for deck cards; its keys are spliced in
// at their alphabetical positions.
func encodeCard(e *Encoder, c *Card, extra *deckExtra) {
	e.String("artist", c.Artist)
	e.Strings("artistIds", c.ArtistIDs)
	e.String("asciiName", c.ASCIIName)
	e.Strings("availability", c.Availability)
	e.Strings("boosterTypes", c.BoosterTypes)
	e.String("borderColor", c.BorderColor)
	e.Strings("cardParts", c.CardParts)
	e.Strings("colorIdentity", c.ColorIdentity)
	e.Strings("colorIndicator", c.ColorIndicator)
	e.Strings("colors", c.Colors)
	e.Float("convertedManaCost", c.ManaValue)
	if extra != nil {
		e.Int("count", extra.Count)
	}
	e.String("defense", c.Defense)
	e.String("duelDeck", c.DuelDeck)
	e.IntPtr("edhrecRank", c.EdhrecRank)
	e.FloatPtr("edhrecSaltiness", c.EdhrecSaltiness)
	e.FloatPtr("faceConvertedManaCost", c.FaceManaValue)
	e.FloatPtr("faceManaValue", c.FaceManaValue)
	e.String("faceName", c.FaceName)
	e.Strings("finishes", c.Finishes)
	e.String("flavorName", c.FlavorName)
	e.String("flavorText", c.FlavorText)
	e.Foreign("foreignData", c.ForeignData)
	e.Strings("frameEffects", c.FrameEffects)
	e.String("frameVersion", c.FrameVersion)
	e.String("hand", c.Hand)
	e.Bool("hasAlternativeDeckLimit", c.HasAlternativeDeckLimit)
	e.Bool("hasContentWarning", c.HasContentWarning)
	e.Bool("hasFoil", c.HasFoil)
	e.Bool("hasNonFoil", c.HasNonFoil)
	e.StringMap("identifiers", c.Identifiers)
	e.Bool("isAlternative", c.IsAlternative)
	if extra != nil {
		e.Bool("isFoil", extra.IsFoil)
	}
	e.Bool("isFullArt", c.IsFullArt)
	e.Bool("isFunny", c.IsFunny)
	e.Bool("isOnlineOnly", c.IsOnlineOnly)
	e.Bool("isOversized", c.IsOversized)
	e.Bool("isPromo", c.IsPromo)
	e.Bool("isRebalanced", c.IsRebalanced)
	e.Bool("isReprint", c.IsReprint)
	e.Bool("isReserved", c.IsReserved)
	e.Bool("isStarter", c.IsStarter)
	e.Bool("isStorySpotlight", c.IsStorySpotlight)
	e.Bool("isTextless", c.IsTextless)
	e.Bool("isTimeshifted", c.IsTimeshifted)
	e.Strings("keywords", c.Keywords)
	e.String("language", c.Language)
	e.String("layout", c.Layout)
	e.Object("leadershipSkills", c.LeadershipSkills, c.LeadershipSkills == nil)
	e.StringMap("legalities", c.Legalities)
	e.String("life", c.Life)
	e.String("loyalty", c.Loyalty)
	e.String("manaCost", c.ManaCost)
	e.Float("manaValue", c.ManaValue)
	e.String("name", c.Name)
	e.String("number", c.Number)
	e.Strings("originalPrintings", c.OriginalPrintings)
	e.String("originalReleaseDate", c.OriginalReleaseDate)
	e.String("originalText", c.OriginalText)
	e.String("originalType", c.OriginalType)
	e.Strings("otherFaceIds", c.OtherFaceIDs)
	e.String("power", c.Power)
	e.Strings("printings", c.Printings)
	e.Strings("promoTypes", c.PromoTypes)
	e.StringMap("purchaseUrls", c.PurchaseURLs)
	e.String("rarity", c.Rarity)
	e.Strings("rebalancedPrintings", c.RebalancedPrintings)
	e.Object("relatedCards", c.RelatedCards, c.RelatedCards.Empty())
	e.Rulings("rulings", c.Rulings)
	e.String("securityStamp", c.SecurityStamp)
	e.String("setCode", c.SetCode)
	e.String("side", c.Side)
	e.String("signature", c.Signature)
	e.Strings("subtypes", c.Subtypes)
	e.Strings("supertypes", c.Supertypes)
	e.String("text", c.Text)
	e.String("toughness", c.Toughness)
	e.String("type", c.Type)
	e.Strings("types", c.Types)
	e.String("uuid", c.UUID)
	e.Strings("variations", c.Variations)
	e.String("watermark", c.Watermark)
}

// MarshalJSON renders the card under the field-presence contract.
func (c *Card) MarshalJSON() ([]byte, error) {
	e := NewEncoder()
	encodeCard(e, c, nil)
	return e.Finish()
}

// DeckCard is one entry of a pre-constructed deck list: a card reference
// plus copy count and finish.
type DeckCard struct {
	Card
	Count  int
	IsFoil bool
}

// MarshalJSON renders the deck card as its underlying card with count and
// isFoil spliced in at their alphabetical positions.
func (d *DeckCard) MarshalJSON() ([]byte, error) {
	e := NewEncoder()
	encodeCard(e, &d.Card, &deckExtra{Count: d.Count, IsFoil: d.IsFoil})
	return e.Finish()
}
