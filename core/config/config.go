package config

import (
	"reflect"
	"strings"

	"github.com/mtgjson/mtgjson-sub003/core/database"
	"github.com/mtgjson/mtgjson-sub003/core/logger"
	"github.com/mtgjson/mtgjson-sub003/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Pipeline holds configuration for the consolidation-and-assembly run.
type Pipeline struct {
	// InputDir is the directory holding provider snapshot tables.
	InputDir string `mapstructure:"input_dir" default:"snapshot"`
	// ResourceDir is the directory holding hand-curated override files.
	ResourceDir string `mapstructure:"resource_dir" default:"resources"`
	// OutputDir is the directory built outputs are written to.
	OutputDir string `mapstructure:"output_dir" default:"outputs"`
	// Workers bounds the per-entity transform and per-set writer pools.
	// Zero means one worker per CPU.
	Workers int `mapstructure:"workers" default:"0"`
	// Pretty enables indented JSON output.
	Pretty bool `mapstructure:"pretty" default:"false"`
}

// Export holds configuration for which output families are emitted.
type Export struct {
	// SetFiles enables per-set JSON documents.
	SetFiles bool `mapstructure:"set_files" default:"true"`
	// Atomic enables the oracle-grouped document.
	Atomic bool `mapstructure:"atomic" default:"true"`
	// Formats enables the format-filtered document pairs.
	Formats bool `mapstructure:"formats" default:"true"`
	// SQLite enables the normalized relational export to a SQLite file.
	SQLite bool `mapstructure:"sqlite" default:"true"`
	// Parquet enables the columnar cards export.
	Parquet bool `mapstructure:"parquet" default:"true"`
	// MySQL loads the normalized tables into the configured database
	// section instead of only the SQLite file.
	MySQL bool `mapstructure:"mysql" default:"false"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Pipeline holds the build run settings.
	Pipeline Pipeline `mapstructure:"pipeline"`
	// Export holds the output family toggles.
	Export Export `mapstructure:"export"`
	// Storage holds configuration for the publish bucket (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the MySQL export target.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. PIPELINE_OUTPUT_DIR -> pipeline.output_dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
