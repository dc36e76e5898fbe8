package store

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fgindraud/slam/layout"
)

// Store is the keyed set of layouts, addressed by the ordered sequence of
// OutputIds in a Layout (its "connected set"). Two layouts with identical
// id sequences displace one another on insert.
type Store struct {
	path    string
	layouts map[string]layout.Layout
}

// KeyOf returns the connected-set key for l: its sorted OutputId sequence,
// joined with a separator byte that cannot appear in an OutputId's String
// rendering, so it is stable across processes.
func KeyOf(l layout.Layout) string {
	ids := l.Ids()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, "\x1f")
}

// LoadOrEmpty reads and parses path. A missing or otherwise unreadable
// file is a first-run: it logs a warning and returns an empty store. A
// file that is present but fails to parse is a hard error (ErrMalformed) —
// this asymmetry is deliberate, per spec §4.D.
func LoadOrEmpty(path string, logger *slog.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("database file missing, starting with an empty store", "path", path)
		} else {
			logger.Warn("database file unreadable, starting with an empty store", "path", path, "error", err)
		}
		return &Store{path: path, layouts: map[string]layout.Layout{}}, nil
	}

	layouts, err := decode(data)
	if err != nil {
		return nil, storeErrorf("LoadOrEmpty", errors.Join(ErrMalformed, err))
	}

	m := make(map[string]layout.Layout, len(layouts))
	for _, l := range layouts {
		m[KeyOf(l)] = l
	}
	return &Store{path: path, layouts: m}, nil
}

// GetLayout looks up the layout for a connected-set key.
func (s *Store) GetLayout(key string) (layout.Layout, bool) {
	l, ok := s.layouts[key]
	return l, ok
}

// Len reports how many layouts are currently held.
func (s *Store) Len() int {
	return len(s.layouts)
}

// All returns every stored layout, sorted by connected-set key for
// deterministic iteration (used by cmd/slamctl dump).
func (s *Store) All() []layout.Layout {
	keys := make([]string, 0, len(s.layouts))
	for k := range s.layouts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]layout.Layout, len(keys))
	for i, k := range keys {
		out[i] = s.layouts[k]
	}
	return out
}

// StoreLayout replaces the entry with l's connected set (if any) and
// persists the whole store to disk, crash-safely.
func (s *Store) StoreLayout(l layout.Layout) error {
	s.layouts[KeyOf(l)] = l
	return s.persist()
}

// persist serializes the store into <path>.tmp in the same directory
// (creating parent dirs if needed), then atomically renames it over the
// target. Any partial write that aborts before the rename leaves the
// previous database intact.
func (s *Store) persist() error {
	data, err := encode(s.All())
	if err != nil {
		return storeErrorf("persist", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return storeErrorf("persist", err)
	}

	tmp, err := os.Create(s.path + ".tmp")
	if err != nil {
		return storeErrorf("persist", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return storeErrorf("persist", err)
	}
	if err := tmp.Close(); err != nil {
		return storeErrorf("persist", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return storeErrorf("persist", err)
	}
	return nil
}
