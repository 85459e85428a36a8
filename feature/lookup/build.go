package lookup

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Build consolidates all auxiliary sources into the four canonical tables.
// Each canonical table is assembled from its sub-tables independently and
// concurrently; within a table, sub-tables combine via a full outer join on
// the shared key with get-or-create coalescing.
func Build(ctx context.Context, src Sources, log *zap.Logger) (*Tables, error) {
	tables := &Tables{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		tables.Faces = buildFaces(src, log)
		return nil
	})
	g.Go(func() error {
		tables.Oracle = buildOracle(src, log)
		return nil
	})
	g.Go(func() error {
		tables.Printings = buildPrintings(src, log)
		return nil
	})
	g.Go(func() error {
		tables.Names = buildNames(src, log)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("consolidated lookup tables",
		zap.Int("faces", len(tables.Faces)),
		zap.Int("oracle", len(tables.Oracle)),
		zap.Int("printings", len(tables.Printings)),
		zap.Int("names", len(tables.Names)))
	return tables, nil
}

func skipIfEmpty[T any](rows []T, table, source string, log *zap.Logger) bool {
	if len(rows) == 0 {
		log.Info("lookup source empty, skipping sub-table",
			zap.String("table", table), zap.String("source", source))
		return true
	}
	return false
}

func buildFaces(src Sources, log *zap.Logger) map[FaceKey]*FaceEntry {
	faces := make(map[FaceKey]*FaceEntry)
	get := func(key FaceKey) *FaceEntry {
		entry, ok := faces[key]
		if !ok {
			entry = &FaceEntry{}
			faces[key] = entry
		}
		return entry
	}

	if !skipIfEmpty(src.ExternalIDs, "faces", "external_ids", log) {
		for _, row := range src.ExternalIDs {
			entry := get(FaceKey{ProviderID: row.ProviderID, Side: row.Side})
			if entry.Identifiers == nil {
				entry.Identifiers = make(map[string]string, len(row.Identifiers))
			}
			for k, v := range row.Identifiers {
				if v != "" {
					entry.Identifiers[k] = v
				}
			}
		}
	}

	if !skipIfEmpty(src.Orientations, "faces", "orientations", log) {
		for _, row := range src.Orientations {
			get(FaceKey{ProviderID: row.ProviderID, Side: row.Side}).Orientation = row.Orientation
		}
	}

	return faces
}

func buildOracle(src Sources, log *zap.Logger) map[string]*OracleEntry {
	oracle := make(map[string]*OracleEntry)
	get := func(id string) *OracleEntry {
		entry, ok := oracle[id]
		if !ok {
			entry = &OracleEntry{}
			oracle[id] = entry
		}
		return entry
	}

	if !skipIfEmpty(src.Rankings, "oracle", "rankings", log) {
		for _, row := range src.Rankings {
			entry := get(row.OracleID)
			entry.EdhrecRank = row.Rank
			entry.EdhrecSaltiness = row.Saltiness
		}
	}

	if !skipIfEmpty(src.Rulings, "oracle", "rulings", log) {
		// Collapse rulings per oracle identity, newest first, so "most
		// recent first" is a property of the stored list.
		byOracle := make(map[string][]RulingRow)
		for _, row := range src.Rulings {
			byOracle[row.OracleID] = append(byOracle[row.OracleID], row)
		}
		for id, rulings := range byOracle {
			sort.Slice(rulings, func(i, j int) bool {
				if rulings[i].Date != rulings[j].Date {
					return rulings[i].Date > rulings[j].Date
				}
				return rulings[i].Text < rulings[j].Text
			})
			get(id).Rulings = rulings
		}
	}

	if !skipIfEmpty(src.Printings, "oracle", "printings", log) {
		codes := make(map[string]map[string]struct{})
		for _, row := range src.Printings {
			if codes[row.OracleID] == nil {
				codes[row.OracleID] = make(map[string]struct{})
			}
			codes[row.OracleID][row.SetCode] = struct{}{}
		}
		for id, set := range codes {
			printings := make([]string, 0, len(set))
			for code := range set {
				printings = append(printings, code)
			}
			sort.Strings(printings)
			get(id).Printings = printings
		}
	}

	if !skipIfEmpty(src.Signatures, "oracle", "signatures", log) {
		for _, row := range src.Signatures {
			get(row.OracleID).Signature = row.Signature
		}
	}

	return oracle
}

func buildPrintings(src Sources, log *zap.Logger) map[PrintKey]*PrintEntry {
	printings := make(map[PrintKey]*PrintEntry)
	get := func(key PrintKey) *PrintEntry {
		entry, ok := printings[key]
		if !ok {
			entry = &PrintEntry{}
			printings[key] = entry
		}
		return entry
	}

	if !skipIfEmpty(src.Foreign, "printings", "foreign", log) {
		for _, row := range src.Foreign {
			key := PrintKey{SetCode: row.SetCode, Number: row.Number}
			entry := get(key)
			entry.Foreign = append(entry.Foreign, row)
		}
		// Group order is fixed by language so repeated runs agree.
		for _, entry := range printings {
			sort.Slice(entry.Foreign, func(i, j int) bool {
				return entry.Foreign[i].Language < entry.Foreign[j].Language
			})
		}
	}

	if !skipIfEmpty(src.DuelDecks, "printings", "duel_decks", log) {
		for _, row := range src.DuelDecks {
			get(PrintKey{SetCode: row.SetCode, Number: row.Number}).DuelDeck = row.Side
		}
	}

	return printings
}

func buildNames(src Sources, log *zap.Logger) map[string]*NameEntry {
	names := make(map[string]*NameEntry)
	get := func(name string) *NameEntry {
		entry, ok := names[name]
		if !ok {
			entry = &NameEntry{}
			names[name] = entry
		}
		return entry
	}

	if !skipIfEmpty(src.MeldGroups, "names", "meld_groups", log) {
		for _, row := range src.MeldGroups {
			// Component order is fixed independently of observation
			// order: parts alphabetical, result last.
			parts := make([]string, len(row.Parts))
			copy(parts, row.Parts)
			sort.Strings(parts)
			group := append(parts, row.Result)

			for _, member := range group {
				entry := get(member)
				entry.MeldResult = row.Result
				entry.MeldGroup = group
			}
		}
	}

	if !skipIfEmpty(src.Archetypes, "names", "archetypes", log) {
		for _, row := range src.Archetypes {
			entry := get(row.Name)
			entry.Archetypes = append(entry.Archetypes, row.Archetype)
		}
		for _, entry := range names {
			sort.Strings(entry.Archetypes)
		}
	}

	return names
}
