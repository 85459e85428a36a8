package card

// Token is one printed token face in one set. Tokens carry no legality,
// rarity, or purchase data; the contract tables are shared with Card so a
// key present on both variants behaves identically.
type Token struct {
	Artist         string
	ArtistIDs      []string
	ASCIIName      string
	Availability   []string
	BoosterTypes   []string
	BorderColor    string
	ColorIdentity  []string
	Colors         []string
	FaceName       string
	Finishes       []string
	FlavorText     string
	FrameEffects   []string
	FrameVersion   string
	HasFoil        bool
	HasNonFoil     bool
	Identifiers    map[string]string
	IsFullArt      bool
	IsFunny        bool
	IsPromo        bool
	IsReprint      bool
	IsTextless     bool
	Keywords       []string
	Language       string
	Layout         string
	Name           string
	Number         string
	Orientation    string
	OtherFaceIDs   []string
	Power          string
	PromoTypes     []string
	RelatedCards   *RelatedCards
	ReverseRelated []string
	SetCode        string
	Side           string
	Signature      string
	Subtypes       []string
	Supertypes     []string
	Text           string
	Toughness      string
	Type           string
	Types          []string
	UUID           string
	Watermark      string
}

// MarshalJSON renders the token under the field-presence contract.
func (t *Token) MarshalJSON() ([]byte, error) {
	e := NewEncoder()
	e.String("artist", t.Artist)
	e.Strings("artistIds", t.ArtistIDs)
	e.String("asciiName", t.ASCIIName)
	e.Strings("availability", t.Availability)
	e.Strings("boosterTypes", t.BoosterTypes)
	e.String("borderColor", t.BorderColor)
	e.Strings("colorIdentity", t.ColorIdentity)
	e.Strings("colors", t.Colors)
	e.String("faceName", t.FaceName)
	e.Strings("finishes", t.Finishes)
	e.String("flavorText", t.FlavorText)
	e.Strings("frameEffects", t.FrameEffects)
	e.String("frameVersion", t.FrameVersion)
	e.Bool("hasFoil", t.HasFoil)
	e.Bool("hasNonFoil", t.HasNonFoil)
	e.StringMap("identifiers", t.Identifiers)
	e.Bool("isFullArt", t.IsFullArt)
	e.Bool("isFunny", t.IsFunny)
	e.Bool("isPromo", t.IsPromo)
	e.Bool("isReprint", t.IsReprint)
	e.Bool("isTextless", t.IsTextless)
	e.Strings("keywords", t.Keywords)
	e.String("language", t.Language)
	e.String("layout", t.Layout)
	e.String("name", t.Name)
	e.String("number", t.Number)
	e.String("orientation", t.Orientation)
	e.Strings("otherFaceIds", t.OtherFaceIDs)
	e.String("power", t.Power)
	e.Strings("promoTypes", t.PromoTypes)
	e.Object("relatedCards", t.RelatedCards, t.RelatedCards.Empty())
	e.Strings("reverseRelated", t.ReverseRelated)
	e.String("setCode", t.SetCode)
	e.String("side", t.Side)
	e.String("signature", t.Signature)
	e.Strings("subtypes", t.Subtypes)
	e.Strings("supertypes", t.Supertypes)
	e.String("text", t.Text)
	e.String("toughness", t.Toughness)
	e.String("type", t.Type)
	e.Strings("types", t.Types)
	e.String("uuid", t.UUID)
	e.String("watermark", t.Watermark)
	return e.Finish()
}
