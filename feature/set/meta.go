package set

import (
	"encoding/json"

	"github.com/mtgjson/mtgjson-sub003/core/loader"
)

// Meta is the product-level metadata row for one set, read schema-on-read
// from the snapshot's set table. BoosterBlob stays raw until assembly so a
// malformed configuration fails only the product that carried it.
type Meta struct {
	BaseSetSize      int
	Block            string
	BoosterBlob      []byte
	Code             string
	IsFoilOnly       bool
	IsForeignOnly    bool
	IsNonFoilOnly    bool
	IsOnlineOnly     bool
	IsPartialPreview bool
	KeyruneCode      string
	Language         string
	MCMID            *int
	MCMName          string
	MTGOCode         string
	Name             string
	ParentCode       string
	ReleaseDate      string
	TCGPlayerGroupID *int
	TokenSetCode     string
	TotalSetSize     int
	Translations     map[string]string
	Type             string
}

// MetaFromRecord reads one set metadata record. The booster configuration
// is re-serialized to raw bytes without validation; parsing happens per
// product during assembly.
func MetaFromRecord(rec loader.Record) Meta {
	m := Meta{
		BaseSetSize:      rec.Int("base_set_size"),
		Block:            rec.Str("block"),
		Code:             rec.Str("code"),
		IsFoilOnly:       rec.Bool("is_foil_only"),
		IsForeignOnly:    rec.Bool("is_foreign_only"),
		IsNonFoilOnly:    rec.Bool("is_non_foil_only"),
		IsOnlineOnly:     rec.Bool("is_online_only"),
		IsPartialPreview: rec.Bool("is_partial_preview"),
		KeyruneCode:      rec.Str("keyrune_code"),
		Language:         rec.Str("language"),
		MCMID:            rec.IntPtr("mcm_id"),
		MCMName:          rec.Str("mcm_name"),
		MTGOCode:         rec.Str("mtgo_code"),
		Name:             rec.Str("name"),
		ParentCode:       rec.Str("parent_code"),
		ReleaseDate:      rec.Str("release_date"),
		TCGPlayerGroupID: rec.IntPtr("tcgplayer_group_id"),
		TokenSetCode:     rec.Str("token_set_code"),
		TotalSetSize:     rec.Int("total_set_size"),
		Translations:     rec.StringMap("translations"),
		Type:             rec.Str("type"),
	}

	if v, ok := rec["booster"]; ok && v != nil {
		if data, err := json.Marshal(v); err == nil {
			m.BoosterBlob = data
		}
	}
	return m
}
