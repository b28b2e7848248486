// Package store owns the in-memory state tree and the commit cycle:
// mutate, persist the whole tree, then fan events out to sinks.
//
// Everything here assumes the single event-handling goroutine of the
// front-end; the store is not safe for concurrent use.
package store

import (
	"fmt"
	"log/slog"

	"chatsphere/domain"
	"chatsphere/domain/event"
	"chatsphere/repositories"
)

// Sink receives domain events after every commit. Renderers register
// themselves here to know when and what to re-project.
type Sink interface {
	Consume(e event.DomainEvent)
}

type Store struct {
	state  domain.State
	repo   repositories.IStateRepository
	log    *slog.Logger
	sinks  []Sink
	nextID domain.ID
}

// NewStore loads the persisted tree (seeding it on first run) and
// positions the id counter past every id already in use.
func NewStore(repo repositories.IStateRepository, log *slog.Logger) (*Store, error) {
	state, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	return &Store{
		state:  state,
		repo:   repo,
		log:    log,
		nextID: state.MaxID() + 1,
	}, nil
}

// State exposes the mutable tree. Callers mutate it in place and then
// Commit; nothing reaches storage or sinks before that.
func (s *Store) State() *domain.State {
	return &s.state
}

// NextID hands out the next entity id. Unlike the wall-clock ids this
// replaces, two calls in the same millisecond cannot collide.
func (s *Store) NextID() domain.ID {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) RegisterSink(sink Sink) {
	s.sinks = append(s.sinks, sink)
}

// Commit rewrites the durable slot with the full tree and notifies the
// sinks with the given events, in order. A failed write is logged and
// otherwise swallowed: the in-memory tree stays authoritative and the
// sinks are still notified, so the session keeps working even when
// storage is unavailable.
func (s *Store) Commit(events ...event.DomainEvent) {
	if err := s.repo.Save(s.state); err != nil {
		s.log.Error("Persisting state failed, in-memory changes not written", "error", err)
	}
	for _, e := range events {
		for _, sink := range s.sinks {
			sink.Consume(e)
		}
	}
}
