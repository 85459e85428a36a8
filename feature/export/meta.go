package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Version is the catalog schema version stamped into every document's
// meta block.
const Version = "5.2.2"

// Meta identifies one build: the schema version plus the build date.
type Meta struct {
	Date    string `json:"date"`
	Version string `json:"version"`
}

// NewMeta stamps today's date.
func NewMeta() Meta {
	return Meta{Date: time.Now().Format("2006-01-02"), Version: Version}
}

// document is the envelope every JSON output shares.
type document struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

// writeDocument marshals one enveloped document to path, creating parent
// directories as needed.
func writeDocument(path string, meta Meta, data any, pretty bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	doc := document{Meta: meta, Data: data}
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
