package booster

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlob = `{
	"draft": {
		"boosters": [
			{"contents": {"common": 10, "uncommon": 3, "rareMythic": 1}, "weight": 3},
			{"contents": {"common": 9, "uncommon": 3, "rareMythic": 1, "foil": 1}, "weight": 1}
		],
		"boostersTotalWeight": 99,
		"sheets": {
			"common": {"cards": {"uuid-c1": 1, "uuid-c2": 2}, "foil": false, "totalWeight": 999, "balanceColors": true},
			"uncommon": {"cards": {"uuid-u1": 1}, "foil": false, "totalWeight": 1},
			"rareMythic": {"cards": {"uuid-r1": 2, "uuid-m1": 1}, "foil": false, "totalWeight": 3},
			"foil": {"cards": {"uuid-c1": 1}, "foil": true, "totalWeight": 1}
		}
	},
	"collector": {
		"boosters": [{"contents": {"everything": 15}, "weight": 1}],
		"boostersTotalWeight": 1,
		"sheets": {"everything": {"cards": {"uuid-c1": 1}, "foil": true, "totalWeight": 1}}
	}
}`

func TestParseRecomputesCachedWeights(t *testing.T) {
	cfg, err := Parse([]byte(sampleBlob))
	require.NoError(t, err)
	require.Contains(t, cfg, "draft")
	require.Contains(t, cfg, "collector")

	draft := cfg["draft"]
	// declared totals were wrong on purpose; parse must not trust them
	assert.Equal(t, 4, draft.BoostersTotalWeight)
	assert.Equal(t, 3, draft.Sheets["common"].TotalWeight)
	assert.True(t, draft.Sheets["common"].BalanceColors)
	assert.True(t, draft.Sheets["foil"].Foil)
}

func TestParseRejectsUndeclaredSheet(t *testing.T) {
	_, err := Parse([]byte(`{"draft":{"boosters":[{"contents":{"ghost":1},"weight":1}],"sheets":{}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestParseMalformedBlob(t *testing.T) {
	_, err := Parse([]byte(`{"draft":`))
	assert.Error(t, err)
}

func TestParseEmptyBlob(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestRecomputeAfterMutation(t *testing.T) {
	cfg, err := Parse([]byte(sampleBlob))
	require.NoError(t, err)

	sheet := cfg["draft"].Sheets["common"]
	sheet.Cards["uuid-c3"] = 5
	sheet.Recompute()
	assert.Equal(t, 8, sheet.TotalWeight)
}

func TestFlattenRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(sampleBlob))
	require.NoError(t, err)

	rows := Flatten("TST", cfg)
	rebuilt := Reconstruct(rows)

	require.Contains(t, rebuilt, "TST")
	assert.Equal(t, cfg, rebuilt["TST"])
}

func TestFlattenDeterministicOrder(t *testing.T) {
	cfg, err := Parse([]byte(sampleBlob))
	require.NoError(t, err)

	first := Flatten("TST", cfg)
	second := Flatten("TST", cfg)
	assert.Equal(t, first, second)

	// booster names, then sheet names, ordered
	assert.Equal(t, "collector", first.Sheets[0].BoosterName)
	assert.Equal(t, "everything", first.Sheets[0].SheetName)
	assert.Equal(t, "common", first.Sheets[1].SheetName)
}

func TestNestedProjectionIsStableJSON(t *testing.T) {
	cfg, err := Parse([]byte(sampleBlob))
	require.NoError(t, err)

	a, err := json.Marshal(cfg)
	require.NoError(t, err)
	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// both projections agree after a round trip through the flat form
	rebuilt := Reconstruct(Flatten("TST", cfg))["TST"]
	c, err := json.Marshal(rebuilt)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(c))
}
