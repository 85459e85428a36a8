package export

import (
	"context"
	"sort"
	"strings"

	"github.com/mtgjson/mtgjson-sub003/feature/booster"
	"github.com/mtgjson/mtgjson-sub003/feature/card"
	"github.com/mtgjson/mtgjson-sub003/feature/set"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const insertBatchSize = 500

// OpenSQLite opens (creating if needed) a SQLite database file for the
// relational export.
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// Relational writes the normalized tables into any gorm-backed target.
// The same writer serves the SQLite file output and the MySQL load.
type Relational struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewRelational wraps an open database handle.
func NewRelational(db *gorm.DB, log *zap.Logger) *Relational {
	return &Relational{db: db, log: log}
}

// Migrate creates or updates every normalized table.
func (r *Relational) Migrate() error {
	return r.db.AutoMigrate(
		&SetRow{},
		&SetTranslationRow{},
		&CardRow{},
		&CardIdentifierRow{},
		&CardLegalityRow{},
		&CardRulingRow{},
		&CardForeignDataRow{},
		&CardPurchaseURLRow{},
		&BoosterSheetRow{},
		&BoosterSheetCardRow{},
		&BoosterVariantRow{},
		&BoosterContentRow{},
	)
}

// Export migrates the schema and loads the whole catalog set by set, in
// sorted order. A failed set skips only itself and lands in the summary.
func (r *Relational) Export(ctx context.Context, a *set.Assembler) (set.Summary, error) {
	var sum set.Summary

	if err := r.Migrate(); err != nil {
		return sum, err
	}
	for _, code := range a.Codes() {
		s, dropped, err := a.BuildSet(ctx, code)
		sum.DroppedRecords += dropped
		if err != nil {
			r.log.Warn("skipping set in relational export",
				zap.String("setCode", code), zap.Error(err))
			sum.Skipped = append(sum.Skipped, set.Skipped{Code: code, Reason: err.Error()})
			continue
		}
		if err := r.InsertSet(s); err != nil {
			return sum, err
		}
		sum.Built = append(sum.Built, code)
	}
	return sum, nil
}

// InsertSet writes one compiled set and all its card rows in batches.
func (r *Relational) InsertSet(s *set.Set) error {
	if err := r.db.Create(setRow(s)).Error; err != nil {
		return err
	}

	var translations []SetTranslationRow
	for _, lang := range sortedMapKeys(s.Translations) {
		translations = append(translations, SetTranslationRow{
			SetCode:  s.Code,
			Language: lang,
			Name:     s.Translations[lang],
		})
	}
	if err := createBatched(r.db, translations); err != nil {
		return err
	}

	var (
		cards       []CardRow
		identifiers []CardIdentifierRow
		legalities  []CardLegalityRow
		rulings     []CardRulingRow
		foreign     []CardForeignDataRow
		purchases   []CardPurchaseURLRow
	)
	for _, c := range s.Cards {
		cards = append(cards, cardRow(c))
		for _, name := range sortedMapKeys(c.Identifiers) {
			identifiers = append(identifiers, CardIdentifierRow{
				UUID: c.UUID, Name: name, Value: c.Identifiers[name],
			})
		}
		for _, format := range sortedMapKeys(c.Legalities) {
			legalities = append(legalities, CardLegalityRow{
				UUID: c.UUID, Format: format, Status: c.Legalities[format],
			})
		}
		for _, ru := range c.Rulings {
			rulings = append(rulings, CardRulingRow{UUID: c.UUID, Date: ru.Date, Text: ru.Text})
		}
		for _, fe := range c.ForeignData {
			foreign = append(foreign, CardForeignDataRow{
				UUID:         c.UUID,
				ForeignUUID:  fe.UUID,
				Language:     fe.Language,
				Name:         fe.Name,
				FaceName:     fe.FaceName,
				Text:         fe.Text,
				Type:         fe.Type,
				FlavorText:   fe.FlavorText,
				MultiverseID: multiverseID(fe),
			})
		}
		for _, provider := range sortedMapKeys(c.PurchaseURLs) {
			purchases = append(purchases, CardPurchaseURLRow{
				UUID: c.UUID, Provider: provider, URL: c.PurchaseURLs[provider],
			})
		}
	}
	if err := createBatched(r.db, cards); err != nil {
		return err
	}
	if err := createBatched(r.db, identifiers); err != nil {
		return err
	}
	if err := createBatched(r.db, legalities); err != nil {
		return err
	}
	if err := createBatched(r.db, rulings); err != nil {
		return err
	}
	if err := createBatched(r.db, foreign); err != nil {
		return err
	}
	if err := createBatched(r.db, purchases); err != nil {
		return err
	}

	return r.insertBooster(s)
}

func (r *Relational) insertBooster(s *set.Set) error {
	if len(s.Booster) == 0 {
		return nil
	}
	flat := booster.Flatten(s.Code, s.Booster)

	var sheets []BoosterSheetRow
	for _, row := range flat.Sheets {
		sheets = append(sheets, BoosterSheetRow{
			SetCode:       row.SetCode,
			BoosterName:   row.BoosterName,
			SheetName:     row.SheetName,
			BalanceColors: row.BalanceColors,
			Foil:          row.Foil,
			TotalWeight:   row.TotalWeight,
		})
	}
	var sheetCards []BoosterSheetCardRow
	for _, row := range flat.SheetCards {
		sheetCards = append(sheetCards, BoosterSheetCardRow{
			SetCode:     row.SetCode,
			BoosterName: row.BoosterName,
			SheetName:   row.SheetName,
			CardUUID:    row.CardUUID,
			Weight:      row.Weight,
		})
	}
	var variants []BoosterVariantRow
	for _, row := range flat.Variants {
		variants = append(variants, BoosterVariantRow{
			SetCode:      row.SetCode,
			BoosterName:  row.BoosterName,
			VariantIndex: row.VariantIndex,
			Weight:       row.Weight,
		})
	}
	var contents []BoosterContentRow
	for _, row := range flat.VariantContents {
		contents = append(contents, BoosterContentRow{
			SetCode:      row.SetCode,
			BoosterName:  row.BoosterName,
			VariantIndex: row.VariantIndex,
			SheetName:    row.SheetName,
			Count:        row.Count,
		})
	}
	if err := createBatched(r.db, sheets); err != nil {
		return err
	}
	if err := createBatched(r.db, sheetCards); err != nil {
		return err
	}
	if err := createBatched(r.db, variants); err != nil {
		return err
	}
	return createBatched(r.db, contents)
}

// createBatched inserts a row slice in batches, skipping empty slices so
// gorm never sees a zero-value insert.
func createBatched[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.CreateInBatches(rows, insertBatchSize).Error
}

func setRow(s *set.Set) *SetRow {
	return &SetRow{
		Code:             s.Code,
		BaseSetSize:      s.BaseSetSize,
		Block:            s.Block,
		IsFoilOnly:       s.IsFoilOnly,
		IsForeignOnly:    s.IsForeignOnly,
		IsNonFoilOnly:    s.IsNonFoilOnly,
		IsOnlineOnly:     s.IsOnlineOnly,
		IsPartialPreview: s.IsPartialPreview,
		KeyruneCode:      s.KeyruneCode,
		Languages:        strings.Join(s.Languages, ", "),
		MCMID:            s.MCMID,
		MCMName:          s.MCMName,
		MTGOCode:         s.MTGOCode,
		Name:             s.Name,
		ParentCode:       s.ParentCode,
		ReleaseDate:      s.ReleaseDate,
		TCGPlayerGroupID: s.TCGPlayerGroupID,
		TokenSetCode:     s.TokenSetCode,
		TotalSetSize:     s.TotalSetSize,
		Type:             s.Type,
	}
}

func cardRow(c *card.Card) CardRow {
	return CardRow{
		UUID:                  c.UUID,
		Artist:                c.Artist,
		AsciiName:             c.ASCIIName,
		Availability:          strings.Join(c.Availability, ", "),
		BorderColor:           c.BorderColor,
		ColorIdentity:         strings.Join(c.ColorIdentity, ", "),
		Colors:                strings.Join(c.Colors, ", "),
		ConvertedManaCost:     c.ManaValue,
		DuelDeck:              c.DuelDeck,
		EdhrecRank:            c.EdhrecRank,
		EdhrecSaltiness:       c.EdhrecSaltiness,
		FaceConvertedManaCost: c.FaceManaValue,
		FaceName:              c.FaceName,
		Finishes:              strings.Join(c.Finishes, ", "),
		FlavorText:            c.FlavorText,
		FrameVersion:          c.FrameVersion,
		HasFoil:               c.HasFoil,
		HasNonFoil:            c.HasNonFoil,
		IsAlternative:         c.IsAlternative,
		IsFullArt:             c.IsFullArt,
		IsOnlineOnly:          c.IsOnlineOnly,
		IsPromo:               c.IsPromo,
		IsReprint:             c.IsReprint,
		Keywords:              strings.Join(c.Keywords, ", "),
		Language:              c.Language,
		Layout:                c.Layout,
		Life:                  c.Life,
		Loyalty:               c.Loyalty,
		ManaCost:              c.ManaCost,
		ManaValue:             c.ManaValue,
		Name:                  c.Name,
		Number:                c.Number,
		Power:                 c.Power,
		Printings:             strings.Join(c.Printings, ", "),
		Rarity:                c.Rarity,
		SetCode:               c.SetCode,
		Side:                  c.Side,
		Signature:             c.Signature,
		Subtypes:              strings.Join(c.Subtypes, ", "),
		Supertypes:            strings.Join(c.Supertypes, ", "),
		Text:                  c.Text,
		Toughness:             c.Toughness,
		Type:                  c.Type,
		Types:                 strings.Join(c.Types, ", "),
		Watermark:             c.Watermark,
	}
}

func multiverseID(fe card.ForeignEntry) string {
	return fe.Identifiers["multiverseId"]
}

func sortedMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
