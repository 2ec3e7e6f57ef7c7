// Package store owns the canonical note collection and the current selection,
// and mirrors the collection into a storage slot after every mutation.
package store

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/note"
	"github.com/Paintersrp/easynote/internal/storage"
)

// ErrMalformed is wrapped by Hydrate and Load when the stored blob cannot be
// decoded.
var ErrMalformed = errors.New("malformed note collection")

type Store struct {
	storage  storage.Storage
	key      string
	now      func() time.Time
	log      *slog.Logger
	notes    []note.Note
	selected *note.Note
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}

func New(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage: st,
		key:     constants.StorageKey,
		now:     time.Now,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		notes:   []note.Note{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLogger replaces the logger, for callers that configure logging after
// the store exists.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.log = logger
	}
}

// Load reads and decodes the persisted collection without touching the store.
// A missing slot yields an empty collection.
func (s *Store) Load() ([]note.Note, error) {
	raw, ok, err := s.storage.GetItem(s.key)
	if err != nil {
		return []note.Note{}, fmt.Errorf("read %q: %w", s.key, err)
	}
	if !ok {
		return []note.Note{}, nil
	}

	notes, err := note.Decode([]byte(raw))
	if err != nil {
		return []note.Note{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return notes, nil
}

// Replace installs a hydrated collection. It does not persist.
func (s *Store) Replace(notes []note.Note) {
	s.notes = cloneAll(notes)
	s.selected = nil
	s.log.Debug("hydrated notes", "count", len(s.notes))
}

// Hydrate loads the persisted collection into the store. On failure the
// collection is left empty for the session and the error is returned.
func (s *Store) Hydrate() error {
	notes, err := s.Load()
	if err != nil {
		s.Replace(nil)
		s.log.Warn("hydration failed, starting empty", "key", s.key, "err", err)
		return err
	}
	s.Replace(notes)
	return nil
}

// Create appends a placeholder note and selects it.
func (s *Store) Create() (note.Note, error) {
	return s.CreateWith(nil)
}

// CreateWith is Create with fill applied to the placeholder before the single
// persist. The id and timestamp are always assigned by the store.
func (s *Store) CreateWith(fill func(*note.Note)) (note.Note, error) {
	n := note.New(s.nextID(), s.now())
	if fill != nil {
		id, edited := n.ID, n.LastEdited
		fill(&n)
		n.ID, n.LastEdited = id, edited
	}
	s.notes = append(s.notes, n)
	s.setSelected(&n)
	s.log.Debug("created note", "id", n.ID)
	return n.Clone(), s.persist()
}

// Update replaces the member with the same id and republishes n as the
// selection. An unknown id leaves the collection unchanged.
func (s *Store) Update(n note.Note) error {
	n = n.Clone()
	n.LastEdited = s.now().UnixMilli()

	for i := range s.notes {
		if s.notes[i].ID == n.ID {
			s.notes[i] = n
			break
		}
	}
	s.setSelected(&n)
	return s.persist()
}

// Delete removes the member with id and always clears the selection.
func (s *Store) Delete(id int64) error {
	kept := make([]note.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	s.selected = nil
	s.log.Debug("deleted note", "id", id)
	return s.persist()
}

// Select binds n, or clears the selection when n is nil. It does not persist.
func (s *Store) Select(n *note.Note) {
	s.setSelected(n)
}

func (s *Store) Selected() (note.Note, bool) {
	if s.selected == nil {
		return note.Note{}, false
	}
	return s.selected.Clone(), true
}

func (s *Store) Notes() []note.Note {
	return cloneAll(s.notes)
}

func (s *Store) Find(id int64) (note.Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n.Clone(), true
		}
	}
	return note.Note{}, false
}

func (s *Store) Len() int {
	return len(s.notes)
}

func (s *Store) setSelected(n *note.Note) {
	if n == nil {
		s.selected = nil
		return
	}
	c := n.Clone()
	s.selected = &c
}

// nextID derives the id from the wall clock and bumps it past the largest
// existing id when the clock has not moved on.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	for _, n := range s.notes {
		if n.ID >= id {
			id = n.ID + 1
		}
	}
	return id
}

func (s *Store) persist() error {
	data, err := note.Encode(s.notes)
	if err != nil {
		return fmt.Errorf("persist notes: %w", err)
	}
	if err := s.storage.SetItem(s.key, string(data)); err != nil {
		s.log.Error("persist failed", "key", s.key, "err", err)
		return fmt.Errorf("persist notes: %w", err)
	}
	return nil
}

func cloneAll(notes []note.Note) []note.Note {
	out := make([]note.Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
