package store

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"slices"

	"github.com/roach88/staffbook/internal/backend"
	"github.com/roach88/staffbook/internal/record"
)

// State is the lifecycle state of a Store.
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Store owns the roster and its backend.
type Store struct {
	backend   backend.Backend
	records   []record.Record
	state     State
	uniqueIDs bool
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithUniqueIDs makes Add reject an id that is already present.
func WithUniqueIDs(enabled bool) Option {
	return func(s *Store) {
		s.uniqueIDs = enabled
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an uninitialized Store over b. Call Load before anything else.
func New(b backend.Backend, opts ...Option) *Store {
	s := &Store{
		backend: b,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a Store and loads it. The returned Store is always Ready;
// a non-nil error means the roster could not be loaded and started empty.
func Open(ctx context.Context, b backend.Backend, opts ...Option) (*Store, error) {
	s := New(b, opts...)
	return s, s.Load(ctx)
}

// State returns the lifecycle state.
func (s *Store) State() State {
	return s.state
}

// Backend returns the backend the store persists to.
func (s *Store) Backend() backend.Backend {
	return s.backend
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Load replaces the roster with the backend document.
//
// A missing document is not an error. On any other failure the roster is
// left empty and the error is returned. Either way the Store is Ready
// afterwards.
func (s *Store) Load(ctx context.Context) error {
	s.records = nil
	defer func() { s.state = StateReady }()

	data, err := s.backend.Read(ctx)
	if errors.Is(err, backend.ErrNotExist) {
		s.logger.Info("no roster found, starting empty", "backend", s.backend.Describe())
		return nil
	}
	if err != nil {
		s.logger.Error("failed to read roster", "backend", s.backend.Describe(), "error", err)
		return newPersistError("read roster", err)
	}

	records, err := Decode(s.backend.Describe(), data)
	if err != nil {
		s.logger.Error("failed to load roster", "backend", s.backend.Describe(), "error", err)
		return err
	}

	s.records = records
	s.logger.Info("roster loaded", "backend", s.backend.Describe(), "employees", len(records))
	return nil
}

// Save writes the full roster to the backend.
func (s *Store) Save(ctx context.Context) error {
	data, err := Encode(s.records)
	if err != nil {
		s.logger.Error("failed to encode roster", "error", err)
		return newPersistError("encode roster", err)
	}
	if err := s.backend.Write(ctx, data); err != nil {
		s.logger.Error("failed to save roster", "backend", s.backend.Describe(), "error", err)
		return newPersistError("write roster", err)
	}
	s.logger.Debug("roster saved", "backend", s.backend.Describe(), "employees", len(s.records))
	return nil
}

// List returns a copy of the roster in insertion order.
func (s *Store) List() []record.Record {
	return slices.Clone(s.records)
}

// Find returns the first record with id.
func (s *Store) Find(id int64) (record.Record, error) {
	if s.state != StateReady {
		return record.Record{}, newNotReady("find")
	}
	i := s.index(id)
	if i < 0 {
		return record.Record{}, NewNotFound(id)
	}
	return s.records[i], nil
}

// Add appends a new record and persists the roster.
func (s *Store) Add(ctx context.Context, id int64, name, title string, compensation float64) error {
	if s.state != StateReady {
		return newNotReady("add")
	}
	if err := validateCompensation(compensation); err != nil {
		return err
	}
	if s.uniqueIDs && s.index(id) >= 0 {
		return newDuplicateID(id)
	}

	prev := s.records
	s.records = append(slices.Clone(prev), record.New(id, name, title, compensation))
	if err := s.commit(ctx, prev); err != nil {
		return err
	}
	s.logger.Debug("employee added", "id", id)
	return nil
}

// Update replaces name, title and compensation of the first record with id
// and persists the roster. The id itself never changes.
func (s *Store) Update(ctx context.Context, id int64, name, title string, compensation float64) error {
	if s.state != StateReady {
		return newNotReady("update")
	}
	if err := validateCompensation(compensation); err != nil {
		return err
	}
	i := s.index(id)
	if i < 0 {
		return NewNotFound(id)
	}

	prev := s.records
	s.records = slices.Clone(prev)
	s.records[i] = record.New(id, name, title, compensation)
	if err := s.commit(ctx, prev); err != nil {
		return err
	}
	s.logger.Debug("employee updated", "id", id)
	return nil
}

// Delete removes the first record with id and persists the roster.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if s.state != StateReady {
		return newNotReady("delete")
	}
	i := s.index(id)
	if i < 0 {
		return NewNotFound(id)
	}

	prev := s.records
	s.records = slices.Delete(slices.Clone(prev), i, i+1)
	if err := s.commit(ctx, prev); err != nil {
		return err
	}
	s.logger.Debug("employee deleted", "id", id)
	return nil
}

// commit persists the current roster, restoring prev if the write fails.
func (s *Store) commit(ctx context.Context, prev []record.Record) error {
	if err := s.Save(ctx); err != nil {
		s.records = prev
		return err
	}
	return nil
}

// index returns the position of the first record with id, or -1.
func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.records, func(r record.Record) bool {
		return r.ID == id
	})
}

func validateCompensation(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NewInvalidInput("compensation", "compensation must be a finite number")
	}
	return nil
}
