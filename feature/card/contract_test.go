package card

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalCard returns a card with only required fields populated, so the
// emptiness semantics of everything else are observable.
func minimalCard() *Card {
	return &Card{
		BorderColor:   "black",
		ColorIdentity: []string{},
		Colors:        []string{},
		Finishes:      []string{"nonfoil"},
		FrameVersion:  "2015",
		HasNonFoil:    true,
		Identifiers:   map[string]string{"scryfallId": "abc"},
		Keywords:      []string{},
		Language:      "English",
		Layout:        "normal",
		Name:          "Test Card",
		Number:        "1",
		Printings:     []string{"TST"},
		Rarity:        "common",
		SetCode:       "TST",
		Type:          "Instant",
		Types:         []string{"Instant"},
		UUID:          "00000000-0000-0000-0000-000000000000",
	}
}

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestRequiredListsPresentAsEmpty(t *testing.T) {
	m := marshalToMap(t, minimalCard())

	for _, key := range []string{"colors", "colorIdentity", "keywords", "foreignData", "availability", "subtypes", "supertypes"} {
		v, ok := m[key]
		require.True(t, ok, "required list %q must be present", key)
		assert.NotNil(t, v, "required list %q must be [] not null", key)
		assert.IsType(t, []any{}, v, key)
	}
}

func TestOmitIfEmptyFieldsAbsent(t *testing.T) {
	m := marshalToMap(t, minimalCard())

	for _, key := range []string{"rulings", "variations", "otherFaceIds", "cardParts", "promoTypes", "frameEffects", "relatedCards", "leadershipSkills"} {
		_, ok := m[key]
		assert.False(t, ok, "omit-if-empty field %q must be absent, not [] or null", key)
	}
}

func TestAlwaysMapsEmitEmptyObject(t *testing.T) {
	c := minimalCard()
	c.Legalities = nil
	c.PurchaseURLs = nil
	m := marshalToMap(t, c)

	assert.Equal(t, map[string]any{}, m["legalities"])
	assert.Equal(t, map[string]any{}, m["purchaseUrls"])
}

func TestExplicitAndOptionalBooleans(t *testing.T) {
	m := marshalToMap(t, minimalCard())

	// hasFoil/hasNonFoil are always explicit, false included
	assert.Equal(t, false, m["hasFoil"])
	assert.Equal(t, true, m["hasNonFoil"])

	// optional booleans never appear as false
	for _, key := range []string{"isPromo", "isReprint", "isFullArt", "isStorySpotlight", "isTimeshifted"} {
		_, ok := m[key]
		assert.False(t, ok, "optional boolean %q must be absent when false", key)
	}

	c := minimalCard()
	c.IsPromo = true
	m = marshalToMap(t, c)
	assert.Equal(t, true, m["isPromo"])
}

func TestSortedListFields(t *testing.T) {
	c := minimalCard()
	c.Colors = []string{"W", "B", "G"}
	c.Keywords = []string{"Trample", "Flying"}
	c.Printings = []string{"ZZZ", "AAA"}
	// source-order fields must come out untouched
	c.Types = []string{"Artifact", "Creature"}
	c.Subtypes = []string{"Human", "Artificer"}
	c.Finishes = []string{"nonfoil", "foil"}

	m := marshalToMap(t, c)
	assert.Equal(t, []any{"B", "G", "W"}, m["colors"])
	assert.Equal(t, []any{"Flying", "Trample"}, m["keywords"])
	assert.Equal(t, []any{"AAA", "ZZZ"}, m["printings"])
	assert.Equal(t, []any{"Artifact", "Creature"}, m["types"])
	assert.Equal(t, []any{"Human", "Artificer"}, m["subtypes"])
	assert.Equal(t, []any{"nonfoil", "foil"}, m["finishes"])
}

func TestRulingsSortedByDateThenText(t *testing.T) {
	c := minimalCard()
	// consolidation keeps rulings newest-first; output must be
	// (date, text) ascending regardless
	c.Rulings = []Ruling{
		{Date: "2021-03-19", Text: "b"},
		{Date: "2021-03-19", Text: "a"},
		{Date: "2004-10-04", Text: "z"},
	}

	m := marshalToMap(t, c)
	rulings, ok := m["rulings"].([]any)
	require.True(t, ok)
	require.Len(t, rulings, 3)

	first := rulings[0].(map[string]any)
	assert.Equal(t, "2004-10-04", first["date"])
	second := rulings[1].(map[string]any)
	assert.Equal(t, "a", second["text"])
}

func TestSingleRulingMarshals(t *testing.T) {
	// ruling entry keys are not card fields, so they must not trip
	// the card-level contract check
	c := minimalCard()
	c.Rulings = []Ruling{{Date: "2004-10-04", Text: "Counts as an Instant."}}

	m := marshalToMap(t, c)
	rulings, ok := m["rulings"].([]any)
	require.True(t, ok)
	require.Len(t, rulings, 1)

	entry := rulings[0].(map[string]any)
	assert.Equal(t, "2004-10-04", entry["date"])
	assert.Equal(t, "Counts as an Instant.", entry["text"])
}

func TestForeignEntryOmitsEmptyOptionalKeys(t *testing.T) {
	c := minimalCard()
	c.ForeignData = []ForeignEntry{{
		Identifiers: map[string]string{},
		Language:    "German",
		Name:        "Testkarte",
		UUID:        "00000000-0000-0000-0000-000000000001",
	}}

	m := marshalToMap(t, c)
	foreign, ok := m["foreignData"].([]any)
	require.True(t, ok)
	require.Len(t, foreign, 1)

	entry := foreign[0].(map[string]any)
	assert.Equal(t, "German", entry["language"])
	assert.Equal(t, "Testkarte", entry["name"])
	assert.Equal(t, map[string]any{}, entry["identifiers"])
	for _, key := range []string{"faceName", "flavorText", "text", "type"} {
		_, present := entry[key]
		assert.False(t, present, "empty %q must be omitted", key)
	}
}

func TestRelatedCardsEmitsSpellbook(t *testing.T) {
	c := minimalCard()
	c.RelatedCards = &RelatedCards{Spellbook: []string{"Zariel's Chosen", "Asmodeus the Archfiend"}}

	m := marshalToMap(t, c)
	related, ok := m["relatedCards"].(map[string]any)
	require.True(t, ok)
	// spellbook keeps source order
	assert.Equal(t, []any{"Zariel's Chosen", "Asmodeus the Archfiend"}, related["spellbook"])
	_, present := related["reverseRelated"]
	assert.False(t, present)
}

func TestUnregisteredFieldIsFatal(t *testing.T) {
	e := NewEncoder()
	e.String("notAField", "x")
	_, err := e.Finish()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContract)
}

func TestMismatchedValueKindIsFatal(t *testing.T) {
	e := NewEncoder()
	// "colors" is a list field, not a scalar
	e.String("colors", "W")
	_, err := e.Finish()
	assert.ErrorIs(t, err, ErrContract)
}

func TestEveryListFieldHasDeclaredOrder(t *testing.T) {
	for key, class := range fieldClasses {
		if class != classRequiredList && class != classOmitList {
			continue
		}
		if key == "rulings" || key == "foreignData" {
			// object lists, ordered by their own emitters
			continue
		}
		_, sorted := sortedListFields[key]
		_, source := sourceOrderListFields[key]
		assert.True(t, sorted != source,
			"list field %q must be in exactly one order set", key)
	}
}

func TestMarshalIsByteStable(t *testing.T) {
	c := minimalCard()
	c.Rulings = []Ruling{{Date: "2020-01-01", Text: "r"}}
	first, err := json.Marshal(c)
	require.NoError(t, err)
	second, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeckCardSplicesCountAndFoil(t *testing.T) {
	d := &DeckCard{Card: *minimalCard(), Count: 4, IsFoil: true}
	data, err := json.Marshal(d)
	require.NoError(t, err)

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, float64(4), m["count"])
	assert.Equal(t, true, m["isFoil"])

	// keys must stay alphabetical with the spliced fields in place
	var keys []string
	dec := json.NewDecoder(bytes.NewReader(data))
	_, err = dec.Token() // {
	require.NoError(t, err)
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		if key, ok := tok.(string); ok {
			keys = append(keys, key)
			var skip json.RawMessage
			require.NoError(t, dec.Decode(&skip))
		}
	}
	assert.IsIncreasing(t, keys)
}

func TestTokenEmptinessScenario(t *testing.T) {
	// Spec scenario: empty keywords serializes as [], empty
	// reverseRelated is omitted entirely.
	tok := &Token{
		BorderColor:   "black",
		ColorIdentity: []string{},
		Colors:        []string{},
		Finishes:      []string{"nonfoil"},
		FrameVersion:  "2015",
		HasNonFoil:    true,
		Identifiers:   map[string]string{"scryfallId": "t1"},
		Keywords:      []string{},
		Language:      "English",
		Layout:        "token",
		Name:          "Goblin",
		Number:        "T1",
		SetCode:       "TST",
		Type:          "Token Creature — Goblin",
		Types:         []string{"Creature"},
		UUID:          "00000000-0000-0000-0000-000000000001",
	}

	m := marshalToMap(t, tok)
	assert.Equal(t, []any{}, m["keywords"])
	_, ok := m["reverseRelated"]
	assert.False(t, ok)
}
