package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mtgjson/mtgjson-sub003/core/loader"
	"github.com/mtgjson/mtgjson-sub003/feature/card"
	"github.com/mtgjson/mtgjson-sub003/feature/lookup"
	"github.com/mtgjson/mtgjson-sub003/feature/set"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAssembler(t *testing.T) *set.Assembler {
	t.Helper()
	tables, err := lookup.Build(context.Background(), lookup.Sources{}, zap.NewNop())
	require.NoError(t, err)
	builder := &card.Builder{
		Lookups:       tables,
		SetSignatures: map[string]string{},
		Log:           zap.NewNop(),
	}

	in := set.Inputs{
		Sets: []loader.Record{
			{"code": "AAA", "name": "Alpha Block", "release_date": "1993-08-05", "type": "expansion"},
			{"code": "BBB", "name": "Beta Block", "release_date": "1994-06-01", "type": "expansion"},
		},
		Cards: []loader.Record{
			{
				"id": "p1", "oracle_id": "o1", "name": "Bolt", "set": "aaa",
				"collector_number": "1", "type_line": "Instant",
				"finishes": []any{"nonfoil"}, "games": []any{"paper"},
				"legalities": map[string]any{"legacy": "Legal"},
			},
			{
				"id": "p2", "oracle_id": "o2", "name": "Shock", "set": "bbb",
				"collector_number": "1", "type_line": "Instant",
				"finishes": []any{"nonfoil"}, "games": []any{"paper"},
				"legalities": map[string]any{"modern": "Legal"},
			},
		},
	}
	return set.NewAssembler(in, builder, 2, zap.NewNop())
}

func testExporter(t *testing.T) *Exporter {
	t.Helper()
	return &Exporter{
		Dir:     t.TempDir(),
		Workers: 2,
		Meta:    Meta{Date: "2026-08-29", Version: Version},
		Log:     zap.NewNop(),
	}
}

func readDocument(t *testing.T, path string) (Meta, map[string]json.RawMessage) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Meta Meta                       `json:"meta"`
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc.Meta, doc.Data
}

func TestAllPrintingsEnvelope(t *testing.T) {
	e := testExporter(t)
	a := testAssembler(t)

	sum, err := e.AllPrintings(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB"}, sum.Built)

	meta, data := readDocument(t, filepath.Join(e.Dir, "AllPrintings.json"))
	assert.Equal(t, "2026-08-29", meta.Date)
	assert.Equal(t, Version, meta.Version)
	assert.Contains(t, data, "AAA")
	assert.Contains(t, data, "BBB")
}

func TestSetFilesMatchCatalogEntries(t *testing.T) {
	e := testExporter(t)
	a := testAssembler(t)

	_, err := e.AllPrintings(context.Background(), a)
	require.NoError(t, err)
	require.NoError(t, e.SetFiles(context.Background(), a))

	_, catalog := readDocument(t, filepath.Join(e.Dir, "AllPrintings.json"))
	for _, code := range a.Codes() {
		raw, err := os.ReadFile(filepath.Join(e.Dir, "sets", code+".json"))
		require.NoError(t, err)
		var doc struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.JSONEq(t, string(catalog[code]), string(doc.Data), code)
	}
}

func TestAtomicAndFormats(t *testing.T) {
	e := testExporter(t)
	a := testAssembler(t)

	require.NoError(t, e.AtomicAndFormats(context.Background(), a, true, true))

	_, atomic := readDocument(t, filepath.Join(e.Dir, "AtomicCards.json"))
	assert.Contains(t, atomic, "Bolt")
	assert.Contains(t, atomic, "Shock")

	// Bolt is legacy-legal only, Shock modern-legal only
	_, legacy := readDocument(t, filepath.Join(e.Dir, "Legacy.json"))
	assert.Contains(t, legacy, "AAA")
	assert.NotContains(t, legacy, "BBB")

	_, modern := readDocument(t, filepath.Join(e.Dir, "Modern.json"))
	assert.Contains(t, modern, "BBB")
	assert.NotContains(t, modern, "AAA")

	_, legacyAtomic := readDocument(t, filepath.Join(e.Dir, "LegacyAtomic.json"))
	assert.Contains(t, legacyAtomic, "Bolt")
	assert.NotContains(t, legacyAtomic, "Shock")

	// an empty filtered catalog is still a valid document
	_, standard := readDocument(t, filepath.Join(e.Dir, "Standard.json"))
	assert.Empty(t, standard)
}

func TestAtomicOnlySkipsFormatFiles(t *testing.T) {
	e := testExporter(t)
	a := testAssembler(t)

	require.NoError(t, e.AtomicAndFormats(context.Background(), a, true, false))

	_, err := os.Stat(filepath.Join(e.Dir, "AtomicCards.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(e.Dir, "Legacy.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "Legacy", formatTitle("legacy"))
	assert.Equal(t, "Pioneer", formatTitle("pioneer"))
	assert.Equal(t, "", formatTitle(""))
}
