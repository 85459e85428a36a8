package set

import (
	"github.com/mtgjson/mtgjson-sub003/feature/booster"
	"github.com/mtgjson/mtgjson-sub003/feature/card"
)

// Set is one compiled product: its metadata, every card and token it
// contains, its decks and sealed products, and its booster configuration.
// Struct fields are declared in output key order so both assembly modes
// produce identical bytes.
type Set struct {
	BaseSetSize      int               `json:"baseSetSize"`
	Block            string            `json:"block,omitempty"`
	Booster          booster.Config    `json:"booster,omitempty"`
	Cards            []*card.Card      `json:"cards"`
	Code             string            `json:"code"`
	Decks            []*Deck           `json:"decks"`
	IsFoilOnly       bool              `json:"isFoilOnly"`
	IsForeignOnly    bool              `json:"isForeignOnly,omitempty"`
	IsNonFoilOnly    bool              `json:"isNonFoilOnly"`
	IsOnlineOnly     bool              `json:"isOnlineOnly"`
	IsPartialPreview bool              `json:"isPartialPreview,omitempty"`
	KeyruneCode      string            `json:"keyruneCode"`
	Languages        []string          `json:"languages"`
	MCMID            *int              `json:"mcmId,omitempty"`
	MCMName          string            `json:"mcmName,omitempty"`
	MTGOCode         string            `json:"mtgoCode,omitempty"`
	Name             string            `json:"name"`
	ParentCode       string            `json:"parentCode,omitempty"`
	ReleaseDate      string            `json:"releaseDate"`
	SealedProduct    []*SealedProduct  `json:"sealedProduct,omitempty"`
	TCGPlayerGroupID *int              `json:"tcgplayerGroupId,omitempty"`
	TokenSetCode     string            `json:"tokenSetCode,omitempty"`
	Tokens           []*card.Token     `json:"tokens"`
	TotalSetSize     int               `json:"totalSetSize"`
	Translations     map[string]string `json:"translations"`
	Type             string            `json:"type"`
}

// Deck is one pre-constructed deck shipped with a set. Board entries are
// full card objects with copy count and finish spliced in.
type Deck struct {
	Code        string           `json:"code"`
	Commander   []*card.DeckCard `json:"commander"`
	MainBoard   []*card.DeckCard `json:"mainBoard"`
	Name        string           `json:"name"`
	ReleaseDate string           `json:"releaseDate,omitempty"`
	SideBoard   []*card.DeckCard `json:"sideBoard"`
	Type        string           `json:"type"`
}

// SealedProduct is one purchasable sealed item tied to a set.
type SealedProduct struct {
	Category     string            `json:"category,omitempty"`
	Contents     *SealedContents   `json:"contents,omitempty"`
	Identifiers  map[string]string `json:"identifiers"`
	Name         string            `json:"name"`
	PurchaseURLs map[string]string `json:"purchaseUrls"`
	ReleaseDate  string            `json:"releaseDate,omitempty"`
	Subtype      string            `json:"subtype,omitempty"`
	UUID         string            `json:"uuid"`
}

// SealedContents declares what a sealed product contains. Fixed parts name
// cards, decks, or other sealed products directly; pack parts point into
// the owning set's booster configuration by kind name, so their contents
// stay probabilistic.
type SealedContents struct {
	Card     []SealedContentCard    `json:"card,omitempty"`
	Deck     []SealedContentDeck    `json:"deck,omitempty"`
	Pack     []SealedContentPack    `json:"pack,omitempty"`
	Sealed   []SealedContentSealed  `json:"sealed,omitempty"`
	Variable []SealedContentVariant `json:"variable,omitempty"`
}

// SealedContentCard is one fixed card inside a sealed product.
type SealedContentCard struct {
	Foil   bool   `json:"foil,omitempty"`
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
	Set    string `json:"set"`
	UUID   string `json:"uuid,omitempty"`
}

// SealedContentDeck is one preconstructed deck inside a sealed product.
type SealedContentDeck struct {
	Name string `json:"name"`
	Set  string `json:"set"`
}

// SealedContentPack references a booster kind from the named set's
// configuration; Code must match a key of that set's booster map.
type SealedContentPack struct {
	Code string `json:"code"`
	Set  string `json:"set"`
}

// SealedContentSealed nests another sealed product by name.
type SealedContentSealed struct {
	Count int    `json:"count,omitempty"`
	Name  string `json:"name"`
	Set   string `json:"set"`
	UUID  string `json:"uuid,omitempty"`
}

// SealedContentVariant is one equally likely alternative content set.
type SealedContentVariant struct {
	Configs []SealedContents `json:"configs"`
}

// Empty reports whether no content parts were declared.
func (c *SealedContents) Empty() bool {
	return c == nil ||
		len(c.Card) == 0 && len(c.Deck) == 0 && len(c.Pack) == 0 &&
			len(c.Sealed) == 0 && len(c.Variable) == 0
}
