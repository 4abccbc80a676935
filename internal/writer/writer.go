package writer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/store"
)

// ErrOutsideOutputDir is returned for files whose path escapes the output
// directory.
var ErrOutsideOutputDir = errors.New("path outside output directory")

// Writer writes generated files below an output directory with parallel
// workers.
type Writer struct {
	outDir   string
	workers  int
	store    *store.Store
	progress func(path string, written bool)

	mu      sync.Mutex
	metrics Metrics
}

// Metrics tracks what a Writer did.
type Metrics struct {
	Written int
	Skipped int
	Bytes   int64
}

// Option configures a Writer.
type Option func(*Writer)

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(w *Writer) {
		if n > 0 {
			w.workers = n
		}
	}
}

// WithStore skips files whose content the store has already seen.
func WithStore(s *store.Store) Option {
	return func(w *Writer) { w.store = s }
}

// WithProgress registers a callback invoked after each file. It may be
// called from several goroutines.
func WithProgress(fn func(path string, written bool)) Option {
	return func(w *Writer) { w.progress = fn }
}

// New creates a Writer for outDir.
func New(outDir string, opts ...Option) *Writer {
	w := &Writer{
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Metrics returns a snapshot of the metrics.
func (w *Writer) Metrics() Metrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// WriteAll writes files in parallel. The first error cancels the rest.
func (w *Writer) WriteAll(ctx context.Context, files []composer.File) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)

	for _, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}

	return eg.Wait()
}

func (w *Writer) writeFile(f composer.File) error {
	content := []byte(f.Source)
	fullPath := filepath.Join(w.outDir, filepath.FromSlash(f.Path))
	if rel, err := filepath.Rel(w.outDir, fullPath); err != nil || rel == "." || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrOutsideOutputDir, f.Path)
	}

	// A cached hash only counts while the file is still on disk.
	if w.store != nil {
		unchanged, err := w.store.Unchanged(f.Path, content)
		if err != nil {
			return fmt.Errorf("check cache for %s: %w", f.Path, err)
		}
		if _, statErr := os.Stat(fullPath); unchanged && statErr == nil {
			w.done(f.Path, false, 0)
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}

	if w.store != nil {
		if err := w.store.Record(f.Path, content); err != nil {
			log.Printf("Error recording %s in cache: %v", f.Path, err)
		}
	}

	w.done(f.Path, true, int64(len(content)))
	return nil
}

func (w *Writer) done(path string, written bool, n int64) {
	w.mu.Lock()
	if written {
		w.metrics.Written++
		w.metrics.Bytes += n
	} else {
		w.metrics.Skipped++
	}
	w.mu.Unlock()

	if w.progress != nil {
		w.progress(path, written)
	}
}
