package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mtgjson/mtgjson-sub003/core/config"
	"github.com/mtgjson/mtgjson-sub003/core/database"
	"github.com/mtgjson/mtgjson-sub003/core/loader"
	"github.com/mtgjson/mtgjson-sub003/core/logger"
	"github.com/mtgjson/mtgjson-sub003/feature/card"
	"github.com/mtgjson/mtgjson-sub003/feature/export"
	"github.com/mtgjson/mtgjson-sub003/feature/lookup"
	"github.com/mtgjson/mtgjson-sub003/feature/set"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var buildSetCode string

// buildCmd runs the full consolidation and assembly pipeline.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build compiled catalogs from the provider snapshot",
	Long: `Build reads the provider snapshot tables, consolidates the auxiliary
lookups, assembles every set, and writes the configured output families
(JSON documents, SQLite/MySQL tables, parquet) to the output directory.

Examples:
  # Full catalog build
  build

  # Rebuild a single set
  build --set LEA`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildSetCode, "set", "", "Build only the given set code")
	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting catalog build",
		zap.String("inputDir", cfg.Pipeline.InputDir),
		zap.String("outputDir", cfg.Pipeline.OutputDir))

	a, err := newAssembler(ctx, cfg, l)
	if err != nil {
		return err
	}

	exporter := &export.Exporter{
		Dir:     cfg.Pipeline.OutputDir,
		Pretty:  cfg.Pipeline.Pretty,
		Workers: cfg.Pipeline.Workers,
		Meta:    export.NewMeta(),
		Log:     l,
	}

	if buildSetCode != "" {
		s, dropped, err := a.BuildSet(ctx, buildSetCode)
		if err != nil {
			return err
		}
		if dropped > 0 {
			l.Warn("records dropped", zap.Int("count", dropped))
		}
		path := filepath.Join(cfg.Pipeline.OutputDir, "sets", buildSetCode+".json")
		if err := exporter.SetFile(path, s); err != nil {
			return err
		}
		l.Info("wrote set file", zap.String("path", path))
		return nil
	}

	summary, err := exporter.AllPrintings(ctx, a)
	if err != nil {
		return err
	}

	if cfg.Export.SetFiles {
		if err := exporter.SetFiles(ctx, a); err != nil {
			return err
		}
	}
	if err := exporter.AtomicAndFormats(ctx, a, cfg.Export.Atomic, cfg.Export.Formats); err != nil {
		return err
	}
	if cfg.Export.SQLite {
		if err := exportSQLite(ctx, cfg, a, l); err != nil {
			return err
		}
	}
	if cfg.Export.MySQL {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := exportRelational(ctx, db, a, l); err != nil {
			return err
		}
	}
	if cfg.Export.Parquet {
		path := filepath.Join(cfg.Pipeline.OutputDir, "cards.parquet")
		if err := export.Parquet(ctx, a, path, l); err != nil {
			return err
		}
	}

	summary.Log(l)
	return nil
}

// newAssembler loads the snapshot, consolidates the lookups, and wires the
// card builder.
func newAssembler(ctx context.Context, cfg *config.Config, l *zap.Logger) (*set.Assembler, error) {
	snap := loader.NewSnapshot(cfg.Pipeline.InputDir, l)

	cards, err := snap.RequireTable("cards")
	if err != nil {
		return nil, err
	}
	sets, err := snap.RequireTable("sets")
	if err != nil {
		return nil, err
	}

	src := lookup.ParseSources(snap)
	src.Printings = lookup.DerivePrintings(cards)

	// Hand-curated duel deck sides, keyed "SET:NUMBER", supplement the
	// snapshot table.
	for key, side := range loader.ResourceMap(cfg.Pipeline.ResourceDir, "duel_decks", l) {
		setCode, number, ok := strings.Cut(key, ":")
		if !ok {
			l.Warn("ignoring malformed duel deck override", zap.String("key", key))
			continue
		}
		src.DuelDecks = append(src.DuelDecks, lookup.DuelDeckRow{
			SetCode: setCode,
			Number:  number,
			Side:    side,
		})
	}

	tables, err := lookup.Build(ctx, src, l)
	if err != nil {
		return nil, fmt.Errorf("failed to consolidate lookups: %w", err)
	}

	builder := &card.Builder{
		Lookups:       tables,
		SetSignatures: loader.ResourceMap(cfg.Pipeline.ResourceDir, "signatures", l),
		Log:           l,
	}

	in := set.Inputs{
		Sets:   sets,
		Cards:  cards,
		Tokens: snap.Table("tokens"),
		Decks:  snap.Table("decks"),
		Sealed: snap.Table("sealed_products"),
	}
	return set.NewAssembler(in, builder, cfg.Pipeline.Workers, l), nil
}

func exportSQLite(ctx context.Context, cfg *config.Config, a *set.Assembler, l *zap.Logger) error {
	path := filepath.Join(cfg.Pipeline.OutputDir, "AllPrintings.sqlite")
	db, err := export.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite output: %w", err)
	}
	return exportRelational(ctx, db, a, l)
}

func exportRelational(ctx context.Context, db *gorm.DB, a *set.Assembler, l *zap.Logger) error {
	sum, err := export.NewRelational(db, l).Export(ctx, a)
	if err != nil {
		return err
	}
	sum.Log(l)
	return nil
}
