// Package config provides configuration management for the build pipeline.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Pipeline: snapshot/resource/output directories, worker pool sizes
//   - Export: which output families a build emits
//   - Storage: S3/MinIO credentials and bucket for the publish step
//   - Log: Logging level and format
//   - Database: optional MySQL target for the relational export
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Pipeline.OutputDir)
package config
