// Package store owns the lifecycle of rendered snowflake images on disk:
// timestamped save, newest-first listing and best-effort cleanup.
package store

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/koch"
)

const timestampLayout = "20060102_150405"

// FileInfo describes one stored render.
type FileInfo struct {
	Name    string    `json:"filename"`
	Size    int64     `json:"size"`
	Created time.Time `json:"created"`
}

// Store persists rendered images under a single output directory. Filenames
// carry the generation parameters and a timestamp, so concurrent requests
// never collide on the same path.
type Store struct {
	dir string
	log *slog.Logger
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes best-effort delete failures to the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates the output directory if needed and returns a store rooted there.
func New(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create output dir: %w", err)
	}
	s := &Store{
		dir: dir,
		log: slog.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the output directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Filename builds the canonical name for a render:
// koch_{half}_{depth}iter_{scale}scale_{timestamp}.png
func (s *Store) Filename(p koch.Params) string {
	scale := strconv.FormatFloat(p.Scale, 'g', -1, 64)
	return fmt.Sprintf("koch_%s_%diter_%sscale_%s.png",
		p.Half, p.Depth, scale, s.now().Format(timestampLayout))
}

// Save encodes the image as PNG under a fresh timestamped filename and
// returns the name.
func (s *Store) Save(img image.Image, p koch.Params) (string, error) {
	name := s.Filename(p)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("store: write image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("store: encode image: %w", err)
	}
	return name, nil
}

// List returns the stored PNG files, newest first.
func (s *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read output dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:    e.Name(),
			Size:    info.Size(),
			Created: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name > files[j].Name
	})
	return files, nil
}

// Clear removes every stored PNG, best effort: a file that cannot be deleted
// is logged and skipped, never fatal. Returns the number of removed files.
func (s *Store) Clear() int {
	files, err := s.List()
	if err != nil {
		s.log.Warn("store.clear_list_failed", "dir", s.dir, "error", err)
		return 0
	}

	removed := 0
	for _, f := range files {
		if err := os.Remove(filepath.Join(s.dir, f.Name)); err != nil {
			s.log.Warn("store.delete_failed", "file", f.Name, "error", err)
			continue
		}
		removed++
	}
	return removed
}

// Open returns a reader over a stored image. Names holding path separators
// are rejected so the store can back an HTTP file route safely.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("store: invalid image name %q: %w", name, fs.ErrNotExist)
	}
	return os.Open(filepath.Join(s.dir, name))
}
