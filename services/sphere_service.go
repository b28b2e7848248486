//go:generate go run go.uber.org/mock/mockgen -source=sphere_service.go -destination=../mocks/mock_sphere_service.go -package=mocks
package services

import (
	"log/slog"
	"strings"
	"time"

	"chatsphere/domain"
	"chatsphere/domain/event"
	"chatsphere/errors"
	"chatsphere/store"

	"github.com/google/uuid"
)

type ISphereService interface {
	CreateSphere(name string) (domain.Sphere, error)
	PostMessage(content string) error
}

// SphereService covers the state-mutating commands of an authenticated
// user: creating spheres and posting messages. Invalid input never
// partially applies; either the whole mutation commits or nothing does.
type SphereService struct {
	store    *store.Store
	sessions ISessionService
	log      *slog.Logger
}

func NewSphereService(st *store.Store, sessions ISessionService, log *slog.Logger) *SphereService {
	return &SphereService{store: st, sessions: sessions, log: log}
}

// CreateSphere creates a sphere owned by the current user, with the two
// default channels, and selects it. The name is stored as typed; only
// blank or whitespace-only names are refused.
func (s *SphereService) CreateSphere(name string) (domain.Sphere, error) {
	state := s.store.State()
	if state.CurrentUser == nil {
		return domain.Sphere{}, errors.ErrNotAuthenticated
	}
	if strings.TrimSpace(name) == "" {
		return domain.Sphere{}, errors.ErrValidationFailed
	}

	sphere := domain.Sphere{
		ID:      s.store.NextID(),
		Name:    name,
		OwnerID: state.CurrentUser.ID,
		IconURL: domain.DefaultIconURL,
		Channels: []domain.Channel{
			{ID: s.store.NextID(), Name: "general"},
			{ID: s.store.NextID(), Name: "random"},
		},
	}
	state.Spheres = append(state.Spheres, sphere)

	// SelectSphere commits, so creation and selection land in storage
	// as one rewrite.
	s.sessions.SelectSphere(sphere.ID)

	s.log.Info("Sphere created", "name", name, "owner", state.CurrentUser.Username)
	return sphere, nil
}

// PostMessage appends the trimmed content to the selected channel,
// snapshotting the current user's id and username. It refuses to run
// without an authenticated user and a resolvable channel selection.
func (s *SphereService) PostMessage(content string) error {
	state := s.store.State()
	if state.CurrentUser == nil {
		return errors.ErrNotAuthenticated
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return errors.ErrValidationFailed
	}

	channel := state.CurrentChannel()
	if channel == nil {
		return errors.ErrNoChannelSelected
	}

	channel.PostMessage(domain.Message{
		UserID:   state.CurrentUser.ID,
		Username: state.CurrentUser.Username,
		Content:  trimmed,
	})

	s.store.Commit(event.MessagePosted{
		ID:        uuid.New(),
		SphereID:  *state.CurrentSphereID,
		ChannelID: channel.ID,
		Author:    state.CurrentUser.Username,
		Content:   trimmed,
		At:        time.Now().UTC(),
	})
	return nil
}
