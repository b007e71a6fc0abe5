package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/schema"
)

const (
	// StateKey holds the whole application document.
	StateKey = "projectManagerData"
	// ViewKey holds the current view, kept apart from the document layout.
	ViewKey = "tally.view"
)

// Listener is told about every state that Save persisted.
type Listener func(state *domain.AppState)

// Store owns the in-memory application state and persists it as one blob.
type Store struct {
	repo      repository.BlobRepo
	log       *slog.Logger
	now       func() time.Time
	mu        sync.RWMutex
	state     *domain.AppState
	listeners []Listener
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock overrides the time source used to stamp LastActivity.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store holding the default state until Load is called.
func New(repo repository.BlobRepo, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		log:   slog.New(slog.DiscardHandler),
		now:   time.Now,
		state: domain.DefaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers a listener called after each Save and Update.
func (s *Store) OnChange(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Load reads the persisted document. A missing document yields the default
// state. A document that fails to parse is logged and replaced by the default
// state; only backend errors are returned.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.repo.Get(ctx, StateKey)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("loading state: %w", err)
	}

	state := domain.DefaultState()
	if err == nil {
		doc, parseErr := schema.Parse(data)
		if parseErr != nil {
			s.log.Error("discarding unreadable state", "key", StateKey, "error", parseErr)
		} else {
			for _, issue := range schema.Validate(doc) {
				s.log.Warn("stored state is inconsistent", "key", StateKey, "issue", issue)
			}
			state = schema.ToState(doc)
		}
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return nil
}

// Read runs fn with the current state under a read lock. fn must not modify
// the state or keep references past its return.
func (s *Store) Read(fn func(state *domain.AppState) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// Update applies fn to the state and saves it, notifying listeners. When fn
// returns an error nothing is saved and the error is returned unchanged.
func (s *Store) Update(ctx context.Context, fn func(state *domain.AppState) error) error {
	return s.update(ctx, fn, true)
}

// UpdateQuietly is Update without the listener notification.
func (s *Store) UpdateQuietly(ctx context.Context, fn func(state *domain.AppState) error) error {
	return s.update(ctx, fn, false)
}

// Save persists the current state and notifies listeners.
func (s *Store) Save(ctx context.Context) error {
	return s.update(ctx, nil, true)
}

// SaveQuietly persists the current state without notifying listeners.
func (s *Store) SaveQuietly(ctx context.Context) error {
	return s.update(ctx, nil, false)
}

func (s *Store) update(ctx context.Context, fn func(*domain.AppState) error, notify bool) error {
	s.mu.Lock()
	if fn != nil {
		if err := fn(s.state); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	state, err := s.persistLocked(ctx)
	listeners := s.listeners
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if notify {
		for _, l := range listeners {
			l(state)
		}
	}
	return nil
}

// persistLocked stamps LastActivity and writes the document. Callers hold mu.
func (s *Store) persistLocked(ctx context.Context) (*domain.AppState, error) {
	now := s.now().UTC()
	s.state.Settings.LastActivity = &now

	data, err := json.Marshal(schema.FromState(s.state))
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	if err := s.repo.Put(ctx, StateKey, data); err != nil {
		return nil, fmt.Errorf("saving state: %w", err)
	}
	return s.state, nil
}

// LoadView returns the persisted view, or the home view when none is stored
// or the stored one is unreadable.
func (s *Store) LoadView(ctx context.Context) (domain.View, error) {
	data, err := s.repo.Get(ctx, ViewKey)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.View{}, nil
	}
	if err != nil {
		return domain.View{}, fmt.Errorf("loading view: %w", err)
	}
	var v domain.View
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Warn("discarding unreadable view", "key", ViewKey, "error", err)
		return domain.View{}, nil
	}
	return v, nil
}

func (s *Store) SaveView(ctx context.Context, v domain.View) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding view: %w", err)
	}
	if err := s.repo.Put(ctx, ViewKey, data); err != nil {
		return fmt.Errorf("saving view: %w", err)
	}
	return nil
}

// Export writes the whole document. Format is "json" (two-space indent, the
// format Import reads) or "yaml".
func (s *Store) Export(w io.Writer, format string) error {
	s.mu.RLock()
	doc := schema.FromState(s.state)
	s.mu.RUnlock()
	return encodeDocument(w, doc, format)
}
