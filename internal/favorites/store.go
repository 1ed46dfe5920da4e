package favorites

// Package favorites persists the user's favorite maps and mappacks as a flat
// JSON file. Entries are denormalized so the favorites list renders without a
// network round-trip.

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tmxb/tmx-browser/internal/model"
)

// ErrAlreadyFavorite is reported when adding an id that is already present.
var ErrAlreadyFavorite = errors.New("already in favorites")

// Entry identifies one favorite plus enough display data to render it
// offline. Older files stored entries as bare numeric ids; those still load,
// with empty display fields.
type Entry struct {
	ID       int    `json:"id"`
	Name     string `json:"name,omitempty"`
	Author   string `json:"author,omitempty"`
	MapCount int    `json:"map_count,omitempty"`
}

// UnmarshalJSON accepts both the object form and the legacy bare-id form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		*e = Entry{ID: id}
		return nil
	}

	type entryAlias Entry
	var obj entryAlias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*e = Entry(obj)
	return nil
}

// DisplayName returns the stored name, or a kind-qualified placeholder for
// legacy entries.
func (e Entry) DisplayName(kind model.ItemKind) string {
	if e.Name != "" {
		return e.Name
	}
	if kind == model.KindMappack {
		return fmt.Sprintf("Mappack %d", e.ID)
	}
	return fmt.Sprintf("Map %d", e.ID)
}

// DisplayAuthor returns the stored author, or "Unknown" for legacy entries.
func (e Entry) DisplayAuthor() string {
	if e.Author != "" {
		return e.Author
	}
	return "Unknown"
}

// fileFormat is the on-disk shape: two ordered arrays keyed by kind.
type fileFormat struct {
	Maps     []Entry `json:"maps"`
	Mappacks []Entry `json:"mappacks"`
}

// Store holds the two favorite lists and rewrites the backing file wholesale
// on every mutation. It is only ever touched from the UI thread.
type Store struct {
	path     string
	maps     []Entry
	mappacks []Entry
}

// Load reads the favorites file at path. A missing file yields an empty
// store; a malformed file is logged and treated as empty rather than
// crashing the app.
func Load(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[FAVORITES] read %s: %v", path, err)
		}
		return s
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("[FAVORITES] malformed %s, starting empty: %v", path, err)
		return s
	}

	s.maps = f.Maps
	s.mappacks = f.Mappacks
	return s
}

// Maps returns the favorite maps in insertion order.
func (s *Store) Maps() []Entry {
	return s.maps
}

// Mappacks returns the favorite mappacks in insertion order.
func (s *Store) Mappacks() []Entry {
	return s.mappacks
}

// AddMap appends a favorite map, persisting the store. Adding an id that is
// already present reports ErrAlreadyFavorite and leaves the list untouched.
func (s *Store) AddMap(e Entry) error {
	if containsID(s.maps, e.ID) {
		return ErrAlreadyFavorite
	}
	s.maps = append(s.maps, e)
	return s.Save()
}

// AddMappack appends a favorite mappack, persisting the store.
func (s *Store) AddMappack(e Entry) error {
	if containsID(s.mappacks, e.ID) {
		return ErrAlreadyFavorite
	}
	s.mappacks = append(s.mappacks, e)
	return s.Save()
}

// Remove drops all entries with the given id from the list for kind and
// persists. Removing an absent id is a no-op.
func (s *Store) Remove(kind model.ItemKind, id int) error {
	if kind == model.KindMappack {
		s.mappacks = withoutID(s.mappacks, id)
	} else {
		s.maps = withoutID(s.maps, id)
	}
	return s.Save()
}

// Save rewrites the favorites file from memory. The payload is fully
// serialized before the file is touched, and written via a temp file rename
// so a failed write cannot truncate previously-good data.
func (s *Store) Save() error {
	f := fileFormat{Maps: s.maps, Mappacks: s.mappacks}
	// Keep empty lists as [] on disk, not null.
	if f.Maps == nil {
		f.Maps = []Entry{}
	}
	if f.Mappacks == nil {
		f.Mappacks = []Entry{}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create favorites dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace favorites: %w", err)
	}
	return nil
}

func containsID(entries []Entry, id int) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

func withoutID(entries []Entry, id int) []Entry {
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return kept
}
