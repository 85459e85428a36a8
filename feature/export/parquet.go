package export

import (
	"context"
	"os"
	"strings"

	"github.com/mtgjson/mtgjson-sub003/feature/card"
	"github.com/mtgjson/mtgjson-sub003/feature/set"

	"github.com/apache/arrow/go/v10/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"
	"github.com/apache/arrow/go/v10/arrow/memory"
	"github.com/apache/arrow/go/v10/parquet"
	"github.com/apache/arrow/go/v10/parquet/pqarrow"
	"go.uber.org/zap"
)

const parquetChunkSize = 4096

// parquetFields defines the columnar cards table. Appenders run per card
// in column order; list fields are comma-joined like the relational rows.
var parquetFields = []arrow.Field{
	{Name: "uuid", Type: arrow.BinaryTypes.String},
	{Name: "artist", Type: arrow.BinaryTypes.String},
	{Name: "availability", Type: arrow.BinaryTypes.String},
	{Name: "borderColor", Type: arrow.BinaryTypes.String},
	{Name: "colorIdentity", Type: arrow.BinaryTypes.String},
	{Name: "colors", Type: arrow.BinaryTypes.String},
	{Name: "faceName", Type: arrow.BinaryTypes.String},
	{Name: "finishes", Type: arrow.BinaryTypes.String},
	{Name: "hasFoil", Type: arrow.FixedWidthTypes.Boolean},
	{Name: "hasNonFoil", Type: arrow.FixedWidthTypes.Boolean},
	{Name: "isReprint", Type: arrow.FixedWidthTypes.Boolean},
	{Name: "keywords", Type: arrow.BinaryTypes.String},
	{Name: "language", Type: arrow.BinaryTypes.String},
	{Name: "layout", Type: arrow.BinaryTypes.String},
	{Name: "manaCost", Type: arrow.BinaryTypes.String},
	{Name: "manaValue", Type: arrow.PrimitiveTypes.Float64},
	{Name: "name", Type: arrow.BinaryTypes.String},
	{Name: "number", Type: arrow.BinaryTypes.String},
	{Name: "power", Type: arrow.BinaryTypes.String},
	{Name: "printings", Type: arrow.BinaryTypes.String},
	{Name: "rarity", Type: arrow.BinaryTypes.String},
	{Name: "setCode", Type: arrow.BinaryTypes.String},
	{Name: "side", Type: arrow.BinaryTypes.String},
	{Name: "subtypes", Type: arrow.BinaryTypes.String},
	{Name: "supertypes", Type: arrow.BinaryTypes.String},
	{Name: "text", Type: arrow.BinaryTypes.String},
	{Name: "toughness", Type: arrow.BinaryTypes.String},
	{Name: "type", Type: arrow.BinaryTypes.String},
	{Name: "types", Type: arrow.BinaryTypes.String},
}

// cardsRecord builds one arrow record holding every card of the catalog.
func cardsRecord(mem memory.Allocator, cards []*card.Card) arrow.Record {
	schema := arrow.NewSchema(parquetFields, nil)
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	str := func(col int, v string) { b.Field(col).(*array.StringBuilder).Append(v) }
	boolean := func(col int, v bool) { b.Field(col).(*array.BooleanBuilder).Append(v) }
	float := func(col int, v float64) { b.Field(col).(*array.Float64Builder).Append(v) }

	for _, c := range cards {
		str(0, c.UUID)
		str(1, c.Artist)
		str(2, strings.Join(c.Availability, ", "))
		str(3, c.BorderColor)
		str(4, strings.Join(c.ColorIdentity, ", "))
		str(5, strings.Join(c.Colors, ", "))
		str(6, c.FaceName)
		str(7, strings.Join(c.Finishes, ", "))
		boolean(8, c.HasFoil)
		boolean(9, c.HasNonFoil)
		boolean(10, c.IsReprint)
		str(11, strings.Join(c.Keywords, ", "))
		str(12, c.Language)
		str(13, c.Layout)
		str(14, c.ManaCost)
		float(15, c.ManaValue)
		str(16, c.Name)
		str(17, c.Number)
		str(18, c.Power)
		str(19, strings.Join(c.Printings, ", "))
		str(20, c.Rarity)
		str(21, c.SetCode)
		str(22, c.Side)
		str(23, strings.Join(c.Subtypes, ", "))
		str(24, strings.Join(c.Supertypes, ", "))
		str(25, c.Text)
		str(26, c.Toughness)
		str(27, c.Type)
		str(28, strings.Join(c.Types, ", "))
	}
	return b.NewRecord()
}

// Parquet writes the columnar cards table for the whole catalog to path.
// Sets are assembled in sorted order; a failed set skips only its own
// cards.
func Parquet(ctx context.Context, a *set.Assembler, path string, log *zap.Logger) error {
	var cards []*card.Card
	for _, code := range a.Codes() {
		s, _, err := a.BuildSet(ctx, code)
		if err != nil {
			log.Warn("skipping set in parquet export", zap.String("setCode", code), zap.Error(err))
			continue
		}
		cards = append(cards, s.Cards...)
	}

	mem := memory.NewGoAllocator()
	rec := cardsRecord(mem, cards)
	defer rec.Release()

	table := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer table.Release()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	props := parquet.NewWriterProperties(parquet.WithDictionaryDefault(false))
	arrProps := pqarrow.DefaultWriterProps()
	if err := pqarrow.WriteTable(table, f, parquetChunkSize, props, arrProps); err != nil {
		return err
	}
	log.Info("wrote columnar cards table", zap.String("path", path), zap.Int("cards", len(cards)))
	return nil
}
