//go:generate go run go.uber.org/mock/mockgen -source=state.go -destination=../mocks/mock_state_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"chatsphere/domain"

	"github.com/dgraph-io/badger/v4"
)

// stateKey is the durable slot: the whole tree lives under this one key.
const stateKey = "chatsphere_state"

type IStateRepository interface {
	Load() (domain.State, error)
	Save(state domain.State) error
}

type StateRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStateRepository(db *badger.DB, log *slog.Logger) IStateRepository {
	return StateRepository{db: db, log: log}
}

// Load reads the durable slot. An absent key or an unparseable blob
// both yield the seeded default state, which is written back
// immediately so subsequent loads are stable.
func (r StateRepository) Load() (domain.State, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(stateKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return r.seed()
	}
	if err != nil {
		return domain.State{}, fmt.Errorf("reading state: %w", err)
	}

	var state domain.State
	if err = json.Unmarshal(raw, &state); err != nil {
		r.log.Warn("Stored state is unreadable, reseeding", "error", err)
		return r.seed()
	}
	return state, nil
}

// Save serializes the full tree and overwrites the slot unconditionally.
func (r StateRepository) Save(state domain.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), data)
	})
}

func (r StateRepository) seed() (domain.State, error) {
	state := defaultState()
	if err := r.Save(state); err != nil {
		return domain.State{}, fmt.Errorf("seeding state: %w", err)
	}
	r.log.Info("Seeded default state")
	return state, nil
}

// defaultState is the bootstrap tree a fresh installation starts from:
// one admin account and one sphere with a greeting in #general.
func defaultState() domain.State {
	return domain.State{
		Users: []domain.User{
			{ID: 1, Username: "admin", Password: "password"},
		},
		Spheres: []domain.Sphere{
			{
				ID:      1,
				Name:    "Welcome Sphere",
				OwnerID: 1,
				IconURL: domain.DefaultIconURL,
				Channels: []domain.Channel{
					{
						ID:   1,
						Name: "general",
						Messages: []domain.Message{
							{UserID: 1, Username: "admin", Content: "Welcome to ChatSphere!"},
						},
					},
					{ID: 2, Name: "introductions"},
				},
			},
		},
	}
}
