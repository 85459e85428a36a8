package lookup

import (
	"strings"

	"github.com/mtgjson/mtgjson-sub003/core/loader"
)

// ParseSources reads every auxiliary table from the snapshot into typed
// rows. Absent tables come back as nil slices and consolidate to empty
// sub-tables. The printings source is not its own table; it derives from
// the base card table, one row per card record.
func ParseSources(snap *loader.Snapshot) Sources {
	var src Sources

	for _, rec := range snap.Table("identifiers") {
		src.ExternalIDs = append(src.ExternalIDs, ExternalIDRow{
			ProviderID:  rec.Str("id"),
			Side:        rec.Str("side"),
			Identifiers: rec.StringMap("identifiers"),
		})
	}
	for _, rec := range snap.Table("orientations") {
		src.Orientations = append(src.Orientations, OrientationRow{
			ProviderID:  rec.Str("id"),
			Side:        rec.Str("side"),
			Orientation: rec.Str("orientation"),
		})
	}
	for _, rec := range snap.Table("rankings") {
		src.Rankings = append(src.Rankings, RankingRow{
			OracleID:  rec.Str("oracle_id"),
			Rank:      rec.IntPtr("rank"),
			Saltiness: rec.FloatPtr("saltiness"),
		})
	}
	for _, rec := range snap.Table("rulings") {
		src.Rulings = append(src.Rulings, RulingRow{
			OracleID: rec.Str("oracle_id"),
			Date:     rec.Str("published_at"),
			Text:     rec.Str("comment"),
		})
	}
	for _, rec := range snap.Table("signatures") {
		src.Signatures = append(src.Signatures, SignatureRow{
			OracleID:  rec.Str("oracle_id"),
			Signature: rec.Str("signature"),
		})
	}
	for _, rec := range snap.Table("foreign_data") {
		src.Foreign = append(src.Foreign, ForeignRow{
			SetCode:      strings.ToUpper(rec.Str("set")),
			Number:       rec.Str("collector_number"),
			Side:         rec.Str("side"),
			Language:     rec.Str("language"),
			Name:         rec.Str("name"),
			FaceName:     rec.Str("face_name"),
			Text:         rec.Str("text"),
			Type:         rec.Str("type"),
			FlavorText:   rec.Str("flavor_text"),
			MultiverseID: rec.Str("multiverse_id"),
		})
	}
	for _, rec := range snap.Table("duel_decks") {
		src.DuelDecks = append(src.DuelDecks, DuelDeckRow{
			SetCode: strings.ToUpper(rec.Str("set")),
			Number:  rec.Str("collector_number"),
			Side:    rec.Str("side"),
		})
	}
	for _, rec := range snap.Table("meld_groups") {
		src.MeldGroups = append(src.MeldGroups, MeldGroupRow{
			Result: rec.Str("result"),
			Parts:  rec.Strings("parts"),
		})
	}
	for _, rec := range snap.Table("archetypes") {
		src.Archetypes = append(src.Archetypes, ArchetypeRow{
			Name:      rec.Str("name"),
			Archetype: rec.Str("archetype"),
		})
	}

	return src
}

// DerivePrintings folds the base card table into printings source rows.
func DerivePrintings(cards []loader.Record) []PrintingRow {
	var rows []PrintingRow
	for _, rec := range cards {
		oracleID := rec.Str("oracle_id")
		if oracleID == "" {
			continue
		}
		rows = append(rows, PrintingRow{
			OracleID: oracleID,
			SetCode:  strings.ToUpper(rec.Str("set")),
		})
	}
	return rows
}
