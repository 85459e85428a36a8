package export

import (
	"testing"

	"github.com/mtgjson/mtgjson-sub003/feature/card"

	"github.com/apache/arrow/go/v10/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardsRecordShape(t *testing.T) {
	cards := []*card.Card{
		{UUID: "u1", Name: "Bolt", SetCode: "AAA", ManaValue: 1, Colors: []string{"R"}},
		{UUID: "u2", Name: "Shock", SetCode: "BBB", ManaValue: 1, Colors: []string{"R"}},
	}

	rec := cardsRecord(memory.NewGoAllocator(), cards)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, int64(len(parquetFields)), rec.NumCols())

	schema := rec.Schema()
	uuidIdx := schema.FieldIndices("uuid")
	require.Len(t, uuidIdx, 1)
	nameIdx := schema.FieldIndices("name")
	require.Len(t, nameIdx, 1)
	assert.Equal(t, `["u1" "u2"]`, rec.Column(uuidIdx[0]).String())
	assert.Equal(t, `["Bolt" "Shock"]`, rec.Column(nameIdx[0]).String())
}

func TestCardsRecordEmpty(t *testing.T) {
	rec := cardsRecord(memory.NewGoAllocator(), nil)
	defer rec.Release()
	assert.Equal(t, int64(0), rec.NumRows())
}
