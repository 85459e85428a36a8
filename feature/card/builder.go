package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mtgjson/mtgjson-sub003/core/loader"
	"github.com/mtgjson/mtgjson-sub003/feature/identity"
	"github.com/mtgjson/mtgjson-sub003/feature/lookup"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingName marks a record that cannot identify itself. Such records
// are dropped from output, never aborting the run.
var ErrMissingName = errors.New("record has no name")

// Builder turns provider-native records into typed entities. It holds only
// read-only state and is safe to share across transform workers.
type Builder struct {
	Lookups *lookup.Tables
	// SetSignatures maps a set code to the numbered-signature override
	// loaded from the resource directory.
	SetSignatures map[string]string
	Log           *zap.Logger
}

// Build constructs one printed card from its snapshot record plus the
// consolidated lookups.
func (b *Builder) Build(rec loader.Record) (*Card, error) {
	name := rec.Str("name")
	if name == "" {
		return nil, fmt.Errorf("%w (provider id %q)", ErrMissingName, rec.Str("id"))
	}

	providerID := rec.Str("id")
	side := rec.Str("side")
	setCode := strings.ToUpper(rec.Str("set"))
	number := rec.Str("collector_number")
	faceName := rec.Str("face_name")

	displayName := name
	if faceName != "" {
		displayName = faceName
	}

	uid := identity.New(providerID, displayName, side)

	supertypes, types, subtypes := parseTypeLine(rec.Str("type_line"))
	finishes := rec.Strings("finishes")

	c := &Card{
		Artist:              rec.Str("artist"),
		ArtistIDs:           rec.Strings("artist_ids"),
		ASCIIName:           rec.Str("ascii_name"),
		Availability:        rec.Strings("games"),
		BoosterTypes:        rec.Strings("booster_types"),
		BorderColor:         rec.Str("border_color"),
		ColorIdentity:       emptyNotNil(rec.Strings("color_identity")),
		ColorIndicator:      rec.Strings("color_indicator"),
		Colors:              emptyNotNil(rec.Strings("colors")),
		Defense:             rec.Str("defense"),
		FaceManaValue:       rec.FloatPtr("face_cmc"),
		FaceName:            faceName,
		Finishes:            finishes,
		FlavorName:          rec.Str("flavor_name"),
		FlavorText:          rec.Str("flavor_text"),
		FrameEffects:        rec.Strings("frame_effects"),
		FrameVersion:        rec.Str("frame"),
		Hand:                rec.Str("hand_modifier"),
		HasFoil:             contains(finishes, "foil") || contains(finishes, "etched"),
		HasNonFoil:          contains(finishes, "nonfoil"),
		Identifiers:         map[string]string{"scryfallId": providerID},
		IsAlternative:       rec.Bool("is_alternative"),
		IsFullArt:           rec.Bool("full_art"),
		IsFunny:             rec.Bool("is_funny"),
		IsOnlineOnly:        rec.Bool("digital"),
		IsOversized:         rec.Bool("oversized"),
		IsPromo:             rec.Bool("promo"),
		IsRebalanced:        rec.Bool("is_rebalanced"),
		IsReprint:           rec.Bool("reprint"),
		IsReserved:          rec.Bool("reserved"),
		IsStarter:           rec.Bool("is_starter"),
		IsStorySpotlight:    rec.Bool("story_spotlight"),
		IsTextless:          rec.Bool("textless"),
		IsTimeshifted:       rec.Bool("timeshifted"),
		Keywords:            emptyNotNil(rec.Strings("keywords")),
		Language:            languageOrDefault(rec.Str("language")),
		Layout:              rec.Str("layout"),
		Legalities:          rec.StringMap("legalities"),
		Life:                rec.Str("life_modifier"),
		Loyalty:             rec.Str("loyalty"),
		ManaCost:            rec.Str("mana_cost"),
		ManaValue:           rec.Float("cmc"),
		Name:                name,
		Number:              number,
		OriginalReleaseDate: rec.Str("original_release_date"),
		OriginalText:        rec.Str("original_text"),
		OriginalType:        rec.Str("original_type"),
		Power:               rec.Str("power"),
		PromoTypes:          rec.Strings("promo_types"),
		PurchaseURLs:        rec.StringMap("purchase_uris"),
		Rarity:              rec.Str("rarity"),
		SecurityStamp:       rec.Str("security_stamp"),
		SetCode:             setCode,
		Side:                side,
		Subtypes:            subtypes,
		Supertypes:          supertypes,
		Text:                rec.Str("oracle_text"),
		Toughness:           rec.Str("toughness"),
		Type:                rec.Str("type_line"),
		Types:               types,
		UUID:                uid.String(),
		Watermark:           rec.Str("watermark"),
	}

	if rec.Bool("content_warning") {
		c.HasContentWarning = true
	}
	if rec.Bool("has_alternative_deck_limit") {
		c.HasAlternativeDeckLimit = true
	}

	c.LeadershipSkills = deriveLeadership(c)
	c.Identifiers["mtgjsonV4Id"] = identity.Legacy(setCode, displayName, c.Colors, providerID, c.Text).String()

	b.joinFace(c, providerID, side)
	b.joinOracle(c, rec.Str("oracle_id"))
	b.joinPrinting(c, uid.String(), setCode, number, side)
	b.joinName(c, name)

	if c.Signature == "" {
		c.Signature = b.SetSignatures[setCode]
	}

	return c, nil
}

// joinFace merges the per-provider external ids and orientation metadata.
func (b *Builder) joinFace(c *Card, providerID, side string) {
	entry := b.Lookups.Face(providerID, side)
	if entry == nil {
		return
	}
	for k, v := range entry.Identifiers {
		c.Identifiers[k] = v
	}
}

// joinOracle attaches oracle-scoped data: rulings, printings, community
// scores, and the submitted signature.
func (b *Builder) joinOracle(c *Card, oracleID string) {
	if oracleID != "" {
		c.Identifiers["scryfallOracleId"] = oracleID
	}
	entry := b.Lookups.ByOracle(oracleID)
	if entry == nil {
		c.Printings = []string{c.SetCode}
		return
	}

	c.EdhrecRank = entry.EdhrecRank
	c.EdhrecSaltiness = entry.EdhrecSaltiness
	c.Signature = entry.Signature
	for _, row := range entry.Rulings {
		c.Rulings = append(c.Rulings, Ruling{Date: row.Date, Text: row.Text})
	}
	if len(entry.Printings) > 0 {
		c.Printings = entry.Printings
	} else {
		c.Printings = []string{c.SetCode}
	}
}

// joinPrinting attaches printing-scoped data: foreign editions (each given
// an identity anchored to this face) and the duel-deck side.
func (b *Builder) joinPrinting(c *Card, anchor, setCode, number, side string) {
	c.ForeignData = []ForeignEntry{}
	entry := b.Lookups.Printing(setCode, number)
	if entry == nil {
		return
	}

	anchorID, err := uuid.Parse(anchor)
	if err != nil {
		// The anchor is generated upstream in Build; a bad one is a
		// programming error, but foreign data is not worth failing the
		// record over.
		b.Log.Warn("skipping foreign data, bad anchor identity",
			zap.String("uuid", anchor), zap.Error(err))
		return
	}

	for _, row := range entry.Foreign {
		fe := ForeignEntry{
			FaceName:   row.FaceName,
			FlavorText: row.FlavorText,
			Language:   row.Language,
			Name:       row.Name,
			Text:       row.Text,
			Type:       row.Type,
			UUID:       identity.Foreign(anchorID, side, row.Language).String(),
		}
		if row.MultiverseID != "" {
			fe.Identifiers = map[string]string{"multiverseId": row.MultiverseID}
		}
		c.ForeignData = append(c.ForeignData, fe)
	}

	c.DuelDeck = entry.DuelDeck
}

// joinName attaches name-keyed data: meld group membership.
func (b *Builder) joinName(c *Card, name string) {
	entry := b.Lookups.ByName(name)
	if entry == nil {
		return
	}
	if len(entry.MeldGroup) > 0 {
		c.CardParts = entry.MeldGroup
	}
}

// BuildToken constructs one token from its snapshot record.
func (b *Builder) BuildToken(rec loader.Record) (*Token, error) {
	name := rec.Str("name")
	if name == "" {
		return nil, fmt.Errorf("%w (provider id %q)", ErrMissingName, rec.Str("id"))
	}

	providerID := rec.Str("id")
	side := rec.Str("side")
	faceName := rec.Str("face_name")

	displayName := name
	if faceName != "" {
		displayName = faceName
	}

	supertypes, types, subtypes := parseTokenTypeLine(rec.Str("type_line"))
	finishes := rec.Strings("finishes")

	t := &Token{
		Artist:         rec.Str("artist"),
		ArtistIDs:      rec.Strings("artist_ids"),
		ASCIIName:      rec.Str("ascii_name"),
		Availability:   rec.Strings("games"),
		BoosterTypes:   rec.Strings("booster_types"),
		BorderColor:    rec.Str("border_color"),
		ColorIdentity:  emptyNotNil(rec.Strings("color_identity")),
		Colors:         emptyNotNil(rec.Strings("colors")),
		FaceName:       faceName,
		Finishes:       finishes,
		FlavorText:     rec.Str("flavor_text"),
		FrameEffects:   rec.Strings("frame_effects"),
		FrameVersion:   rec.Str("frame"),
		HasFoil:        contains(finishes, "foil") || contains(finishes, "etched"),
		HasNonFoil:     contains(finishes, "nonfoil"),
		Identifiers:    map[string]string{"scryfallId": providerID},
		IsFullArt:      rec.Bool("full_art"),
		IsFunny:        rec.Bool("is_funny"),
		IsPromo:        rec.Bool("promo"),
		IsReprint:      rec.Bool("reprint"),
		IsTextless:     rec.Bool("textless"),
		Keywords:       emptyNotNil(rec.Strings("keywords")),
		Language:       languageOrDefault(rec.Str("language")),
		Layout:         rec.Str("layout"),
		Name:           name,
		Number:         rec.Str("collector_number"),
		Power:          rec.Str("power"),
		PromoTypes:     rec.Strings("promo_types"),
		ReverseRelated: rec.Strings("reverse_related"),
		SetCode:        strings.ToUpper(rec.Str("set")),
		Side:           side,
		Subtypes:       subtypes,
		Supertypes:     supertypes,
		Text:           rec.Str("oracle_text"),
		Toughness:      rec.Str("toughness"),
		Type:           rec.Str("type_line"),
		Types:          types,
		UUID:           identity.New(providerID, displayName, side).String(),
		Watermark:      rec.Str("watermark"),
	}

	if face := b.Lookups.Face(providerID, side); face != nil {
		for k, v := range face.Identifiers {
			t.Identifiers[k] = v
		}
		t.Orientation = face.Orientation
	}

	return t, nil
}

// ResolveLinks fills the cross-face and same-set link fields that can only
// be known once every card of a set exists: otherFaceIds (faces sharing a
// provider id) and variations (same name, different printing, same set).
func ResolveLinks(cards []*Card) {
	byProvider := make(map[string][]*Card)
	byName := make(map[string][]*Card)
	for _, c := range cards {
		pid := c.Identifiers["scryfallId"]
		byProvider[pid] = append(byProvider[pid], c)
		byName[c.Name] = append(byName[c.Name], c)
	}

	for _, c := range cards {
		for _, other := range byProvider[c.Identifiers["scryfallId"]] {
			if other.UUID != c.UUID {
				c.OtherFaceIDs = append(c.OtherFaceIDs, other.UUID)
			}
		}
		for _, other := range byName[c.Name] {
			if other.UUID != c.UUID && other.Number != c.Number {
				c.Variations = append(c.Variations, other.UUID)
			}
		}
	}
}

// parseTypeLine decomposes a printed type line into supertype, type, and
// subtype lists, preserving printed order.
func parseTypeLine(line string) (supertypes, types, subtypes []string) {
	if line == "" {
		return nil, nil, nil
	}

	// Multi-face type lines join faces with " // "; only the first face's
	// line describes this record.
	if idx := strings.Index(line, " // "); idx >= 0 {
		line = line[:idx]
	}

	left := line
	if idx := strings.Index(line, " — "); idx >= 0 {
		left = line[:idx]
		for _, sub := range strings.Fields(line[idx+len(" — "):]) {
			subtypes = append(subtypes, sub)
		}
	}

	for _, word := range strings.Fields(left) {
		if _, ok := superTypes[word]; ok {
			supertypes = append(supertypes, word)
		} else {
			types = append(types, word)
		}
	}
	return supertypes, types, subtypes
}

// parseTokenTypeLine handles token type lines, whose left side prefixes the
// real types with marker words ("Token Creature", "Card") that are not card
// types themselves.
func parseTokenTypeLine(line string) (supertypes, types, subtypes []string) {
	supertypes, types, subtypes = parseTypeLine(line)
	kept := types[:0]
	for _, t := range types {
		if t != "Token" && t != "Card" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return supertypes, nil, subtypes
	}
	return supertypes, kept, subtypes
}

// superTypes is the closed set of supertype words; everything else on the
// left side of the type line is a card type.
var superTypes = map[string]struct{}{
	"Basic":     {},
	"Elite":     {},
	"Host":      {},
	"Legendary": {},
	"Ongoing":   {},
	"Snow":      {},
	"World":     {},
}

// deriveLeadership marks which formats a card may lead. Nil means none.
func deriveLeadership(c *Card) *LeadershipSkills {
	legendary := contains(c.Supertypes, "Legendary")
	creature := contains(c.Types, "Creature")
	planeswalker := contains(c.Types, "Planeswalker")
	textCommander := strings.Contains(c.Text, "can be your commander")

	ls := LeadershipSkills{
		Brawl:       legendary && (creature || planeswalker),
		Commander:   (legendary && creature) || textCommander,
		Oathbreaker: planeswalker,
	}
	if !ls.Brawl && !ls.Commander && !ls.Oathbreaker {
		return nil
	}
	return &ls
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return "English"
	}
	return lang
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// emptyNotNil turns a nil slice into an empty one so required-list fields
// always carry a value.
func emptyNotNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
