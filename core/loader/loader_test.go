package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSnapshotTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cards.json", `[{"name":"Opt","cmc":1,"colors":["U"]}]`)
	writeFile(t, dir, "bad.json", `{"not":"an array"}`)

	snap := NewSnapshot(dir, zap.NewNop())

	t.Run("present table", func(t *testing.T) {
		records := snap.Table("cards")
		require.Len(t, records, 1)
		assert.Equal(t, "Opt", records[0].Str("name"))
		assert.Equal(t, 1, records[0].Int("cmc"))
		assert.Equal(t, []string{"U"}, records[0].Strings("colors"))
	})

	t.Run("absent table is empty not fatal", func(t *testing.T) {
		assert.Empty(t, snap.Table("rulings"))
	})

	t.Run("malformed optional table is empty not fatal", func(t *testing.T) {
		assert.Empty(t, snap.Table("bad"))
	})

	t.Run("absent required table errors", func(t *testing.T) {
		_, err := snap.RequireTable("missing")
		assert.Error(t, err)
	})
}

func TestRecordAccessors(t *testing.T) {
	r := Record{
		"name":    "Giant Growth",
		"cmc":     float64(1),
		"salt":    0.42,
		"foil":    true,
		"ids":     map[string]any{"scryfallId": "abc"},
		"faces":   []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}},
		"nothing": nil,
	}

	assert.True(t, r.Has("name"))
	assert.False(t, r.Has("nothing"))
	assert.Equal(t, "Giant Growth", r.Str("name"))
	assert.Equal(t, 1, r.Int("cmc"))
	assert.Nil(t, r.IntPtr("missing"))
	require.NotNil(t, r.FloatPtr("salt"))
	assert.Equal(t, 0.42, *r.FloatPtr("salt"))
	assert.True(t, r.Bool("foil"))
	assert.Equal(t, map[string]string{"scryfallId": "abc"}, r.StringMap("ids"))
	require.Len(t, r.Records("faces"), 2)
	assert.Equal(t, "b", r.Records("faces")[1].Str("name"))
}

func TestResourceMap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "duel_decks.json", `{"DDG:1":"a","DDG:2":"b"}`)

	m := ResourceMap(dir, "duel_decks", zap.NewNop())
	assert.Equal(t, "a", m["DDG:1"])

	assert.Empty(t, ResourceMap(dir, "missing", zap.NewNop()))
}
