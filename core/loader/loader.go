package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Snapshot reads provider extract tables from a directory of JSON files.
// Each table is a file named <table>.json holding an array of objects.
// The pipeline does not care how the files got there; the fetch layer that
// produces them lives outside this repository.
type Snapshot struct {
	dir string
	log *zap.Logger
}

// NewSnapshot creates a snapshot reader rooted at dir.
func NewSnapshot(dir string, log *zap.Logger) *Snapshot {
	return &Snapshot{dir: dir, log: log}
}

// Table loads an optional table. A missing or empty source degrades to an
// empty table with a low-severity log line, never a failure.
func (s *Snapshot) Table(name string) []Record {
	records, err := readTable(filepath.Join(s.dir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("optional table absent, using empty table", zap.String("table", name))
			return nil
		}
		s.log.Warn("failed to read optional table, using empty table",
			zap.String("table", name), zap.Error(err))
		return nil
	}
	return records
}

// RequireTable loads a table that the pipeline cannot run without.
func (s *Snapshot) RequireTable(name string) ([]Record, error) {
	records, err := readTable(filepath.Join(s.dir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("required table %q: %w", name, err)
	}
	return records, nil
}

func readTable(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	records := make([]Record, 0, len(raw))
	for _, row := range raw {
		records = append(records, Record(row))
	}
	return records, nil
}

// ResourceMap loads a hand-curated override file (a flat string-to-string
// JSON object) by name from the resource directory. A missing file is an
// empty map; these overrides are optional by construction.
func ResourceMap(dir, name string, log *zap.Logger) map[string]string {
	data, err := os.ReadFile(filepath.Join(dir, name+".json"))
	if err != nil {
		log.Info("resource override absent", zap.String("resource", name))
		return map[string]string{}
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("malformed resource override, ignoring",
			zap.String("resource", name), zap.Error(err))
		return map[string]string{}
	}
	return raw
}
