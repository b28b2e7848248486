//go:generate go run go.uber.org/mock/mockgen -source=session_service.go -destination=../mocks/mock_session_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"chatsphere/auth"
	"chatsphere/domain"
	"chatsphere/domain/event"
	"chatsphere/errors"
	"chatsphere/store"
)

type ISessionService interface {
	SignUp(username, password string) (domain.User, error)
	LogIn(username, password string) (domain.User, error)
	LogOut()
	SelectSphere(id domain.ID)
	SelectChannel(id domain.ID) error
}

// SessionService tracks who is authenticated and which sphere/channel
// is focused. Every successful operation commits the whole tree.
type SessionService struct {
	store *store.Store
	log   *slog.Logger
}

func NewSessionService(st *store.Store, log *slog.Logger) *SessionService {
	return &SessionService{store: st, log: log}
}

// SignUp creates an account and immediately authenticates it.
// Usernames are unique by exact, case-sensitive match.
func (s *SessionService) SignUp(username, password string) (domain.User, error) {
	req := auth.CredentialsRequest{Username: username, Password: password}
	if err := auth.ValidateCredentials(req); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrValidationFailed, err)
	}

	state := s.store.State()
	if state.UserByName(username) != nil {
		return domain.User{}, errors.ErrUsernameTaken
	}

	user := domain.User{
		ID:       s.store.NextID(),
		Username: username,
		Password: password,
	}
	state.Users = append(state.Users, user)
	state.CurrentUser = &domain.SessionUser{ID: user.ID, Username: user.Username}
	s.store.Commit(event.StateChanged{At: time.Now().UTC()})

	s.log.Info("User signed up", "username", username)
	return user, nil
}

// LogIn succeeds only on an exact match of both fields. A failure
// leaves the session untouched; the error stays generic so callers
// cannot tell a wrong password from an unknown username.
func (s *SessionService) LogIn(username, password string) (domain.User, error) {
	state := s.store.State()
	user := state.UserByName(username)
	if user == nil || user.Password != password {
		return domain.User{}, errors.ErrInvalidCredentials
	}

	state.CurrentUser = &domain.SessionUser{ID: user.ID, Username: user.Username}
	s.store.Commit(event.StateChanged{At: time.Now().UTC()})

	s.log.Info("User logged in", "username", username)
	return *user, nil
}

// LogOut clears the authenticated user and both selections.
func (s *SessionService) LogOut() {
	state := s.store.State()
	state.CurrentUser = nil
	state.CurrentSphereID = nil
	state.CurrentChannelID = nil
	s.store.Commit(event.StateChanged{At: time.Now().UTC()})
}

// SelectSphere focuses a sphere and derives the channel selection from
// it: the sphere's first channel, or none when it has no channels.
//
// An id that resolves to nothing is still recorded, matching the
// historical behavior of the front-end; projections treat the dangling
// selection as no selection at all.
func (s *SessionService) SelectSphere(id domain.ID) {
	state := s.store.State()
	state.CurrentSphereID = &id

	sphere := state.Sphere(id)
	if sphere != nil && len(sphere.Channels) > 0 {
		first := sphere.Channels[0].ID
		state.CurrentChannelID = &first
	} else {
		state.CurrentChannelID = nil
	}
	s.store.Commit(event.StateChanged{At: time.Now().UTC()})
}

// SelectChannel focuses a channel of the currently selected sphere.
// Unlike SelectSphere it refuses ids that do not belong to that sphere,
// so the two selections can never disagree.
func (s *SessionService) SelectChannel(id domain.ID) error {
	state := s.store.State()
	sphere := state.CurrentSphere()
	if sphere == nil || sphere.Channel(id) == nil {
		return errors.ErrDanglingReference
	}

	state.CurrentChannelID = &id
	s.store.Commit(event.StateChanged{At: time.Now().UTC()})
	return nil
}
