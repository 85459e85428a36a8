package cmd

import (
	"context"
	"fmt"

	"github.com/mtgjson/mtgjson-sub003/core/config"
	"github.com/mtgjson/mtgjson-sub003/core/logger"
	"github.com/mtgjson/mtgjson-sub003/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd uploads a built output directory to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload built outputs to the configured bucket",
	Long: `Publish walks the output directory and uploads every built document
to the configured object storage bucket, creating the bucket when it does
not exist yet.`,
	RunE: runPublish,
}

func init() {
	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	l.Info("Publishing built outputs",
		zap.String("dir", cfg.Pipeline.OutputDir),
		zap.String("bucket", cfg.Storage.Bucket))

	uploaded, err := storage.Publish(ctx, client, cfg.Storage.Bucket, cfg.Pipeline.OutputDir, l)
	if err != nil {
		return err
	}

	l.Info("Publish complete", zap.Int("objects", uploaded))
	return nil
}
