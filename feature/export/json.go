package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mtgjson/mtgjson-sub003/feature/set"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Exporter writes the JSON output family into Dir.
type Exporter struct {
	Dir     string
	Pretty  bool
	Workers int
	Meta    Meta
	Log     *zap.Logger
}

// AllPrintings streams the whole catalog into AllPrintings.json. The data
// object is written set by set so peak memory stays bounded by one set.
func (e *Exporter) AllPrintings(ctx context.Context, a *set.Assembler) (set.Summary, error) {
	var sum set.Summary

	path := filepath.Join(e.Dir, "AllPrintings.json")
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return sum, err
	}
	f, err := os.Create(path)
	if err != nil {
		return sum, err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	metaData, err := json.Marshal(e.Meta)
	if err != nil {
		return sum, err
	}
	if _, err := fmt.Fprintf(w, `{"meta":%s,"data":`, metaData); err != nil {
		return sum, err
	}

	sum, err = a.WriteAll(ctx, w)
	if err != nil {
		return sum, err
	}
	if _, err := io.WriteString(w, "}"); err != nil {
		return sum, err
	}
	if err := w.Flush(); err != nil {
		return sum, err
	}

	e.Log.Info("wrote whole-catalog document",
		zap.String("path", path), zap.Int("sets", len(sum.Built)))
	return sum, nil
}

// SetFile writes one enveloped per-set document to path.
func (e *Exporter) SetFile(path string, s *set.Set) error {
	return writeDocument(path, e.Meta, s, e.Pretty)
}

// SetFiles writes one enveloped document per set under Dir/sets. Sets are
// assembled and written in parallel on a bounded pool; a failed set skips
// only itself.
func (e *Exporter) SetFiles(ctx context.Context, a *set.Assembler) error {
	dir := filepath.Join(e.Dir, "sets")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit())
	for _, code := range a.Codes() {
		code := code
		g.Go(func() error {
			s, _, err := a.BuildSet(ctx, code)
			if err != nil {
				e.Log.Warn("skipping set file", zap.String("setCode", code), zap.Error(err))
				return nil
			}
			path := filepath.Join(dir, code+".json")
			if err := writeDocument(path, e.Meta, s, e.Pretty); err != nil {
				return fmt.Errorf("set file %s: %w", code, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// AtomicAndFormats makes one sequential pass over the catalog, feeding the
// oracle-grouped index and the per-format filtered catalog streams from
// each set before releasing it. It then writes AtomicCards.json and the
// per-format atomic documents from the accumulated index.
func (e *Exporter) AtomicAndFormats(ctx context.Context, a *set.Assembler, atomic, formats bool) error {
	if !atomic && !formats {
		return nil
	}

	var streams map[string]*formatStream
	if formats {
		streams = make(map[string]*formatStream, len(set.Formats))
		for _, format := range set.Formats {
			fs, err := newFormatStream(filepath.Join(e.Dir, formatTitle(format)+".json"), e.Meta)
			if err != nil {
				closeStreams(streams)
				return err
			}
			streams[format] = fs
		}
	}

	idx := set.NewAtomicIndex()
	for _, code := range a.Codes() {
		s, _, err := a.BuildSet(ctx, code)
		if err != nil {
			e.Log.Warn("skipping set in filtered outputs", zap.String("setCode", code), zap.Error(err))
			continue
		}
		idx.Add(s)
		for format, fs := range streams {
			filtered := set.FilterSet(s, format)
			if filtered == nil {
				continue
			}
			if err := fs.writeSet(code, filtered); err != nil {
				closeStreams(streams)
				return err
			}
		}
	}
	for _, fs := range streams {
		if err := fs.close(); err != nil {
			return err
		}
	}

	if !atomic {
		return nil
	}
	data := idx.Build()
	if err := writeDocument(filepath.Join(e.Dir, "AtomicCards.json"), e.Meta, data, e.Pretty); err != nil {
		return err
	}
	if formats {
		for _, format := range set.Formats {
			path := filepath.Join(e.Dir, formatTitle(format)+"Atomic.json")
			if err := writeDocument(path, e.Meta, set.FilterAtomic(data, format), e.Pretty); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Exporter) limit() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// formatStream incrementally writes one format-filtered catalog document.
type formatStream struct {
	f     *os.File
	w     *bufio.Writer
	first bool
}

func newFormatStream(path string, meta Meta) (*formatStream, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := bufio.NewWriter(f)

	metaData, err := json.Marshal(meta)
	if err != nil {
		f.Close()
		return nil, err
	}
	if _, err := fmt.Fprintf(w, `{"meta":%s,"data":{`, metaData); err != nil {
		f.Close()
		return nil, err
	}
	return &formatStream{f: f, w: w, first: true}, nil
}

func (fs *formatStream) writeSet(code string, s *set.Set) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if !fs.first {
		if _, err := io.WriteString(fs.w, ","); err != nil {
			return err
		}
	}
	fs.first = false

	key, _ := json.Marshal(code)
	if _, err := fs.w.Write(key); err != nil {
		return err
	}
	if _, err := io.WriteString(fs.w, ":"); err != nil {
		return err
	}
	_, err = fs.w.Write(data)
	return err
}

func (fs *formatStream) close() error {
	if _, err := io.WriteString(fs.w, "}}"); err != nil {
		fs.f.Close()
		return err
	}
	if err := fs.w.Flush(); err != nil {
		fs.f.Close()
		return err
	}
	return fs.f.Close()
}

func closeStreams(streams map[string]*formatStream) {
	for _, fs := range streams {
		fs.f.Close()
	}
}

// formatTitle turns a format key into its document file name prefix.
func formatTitle(format string) string {
	if format == "" {
		return ""
	}
	return strings.ToUpper(format[:1]) + format[1:]
}
