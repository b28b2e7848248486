package services

import (
	"log/slog"
	"testing"

	"chatsphere/domain"
	"chatsphere/errors"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authenticatedState() domain.State {
	return domain.State{
		Users:       []domain.User{{ID: 3, Username: "alice", Password: "pw1"}},
		CurrentUser: &domain.SessionUser{ID: 3, Username: "alice"},
	}
}

func TestSphereService_CreateSphere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should create an owned sphere with default channels and select it", func(t *testing.T) {
		req := require.New(t)
		st, repo := newTestStore(t, ctrl, authenticatedState())
		repo.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
		sessions := NewSessionService(st, slog.Default())
		svc := NewSphereService(st, sessions, slog.Default())

		sphere, err := svc.CreateSphere("Team X")

		req.NoError(err)
		req.Equal("Team X", sphere.Name)
		req.Equal(domain.ID(3), sphere.OwnerID)
		req.Equal(domain.DefaultIconURL, sphere.IconURL)
		req.Len(sphere.Channels, 2)
		req.Equal("general", sphere.Channels[0].Name)
		req.Equal("random", sphere.Channels[1].Name)

		state := st.State()
		req.Len(state.Spheres, 1)
		req.Equal(sphere.ID, *state.CurrentSphereID)
		req.Equal(sphere.Channels[0].ID, *state.CurrentChannelID)
	})

	t.Run("should refuse a whitespace-only name without mutating", func(t *testing.T) {
		req := require.New(t)
		st, repo := newTestStore(t, ctrl, authenticatedState())
		repo.EXPECT().Save(gomock.Any()).Times(0)
		svc := NewSphereService(st, NewSessionService(st, slog.Default()), slog.Default())

		_, err := svc.CreateSphere("   ")

		req.ErrorIs(err, errors.ErrValidationFailed)
		req.Empty(st.State().Spheres)
	})

	t.Run("should refuse a guest", func(t *testing.T) {
		req := require.New(t)
		st, repo := newTestStore(t, ctrl, domain.State{})
		repo.EXPECT().Save(gomock.Any()).Times(0)
		svc := NewSphereService(st, NewSessionService(st, slog.Default()), slog.Default())

		_, err := svc.CreateSphere("Team X")

		req.ErrorIs(err, errors.ErrNotAuthenticated)
	})
}

func TestSphereService_PostMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selectedState := func() domain.State {
		state := authenticatedState()
		state.Spheres = []domain.Sphere{
			{ID: 10, Name: "Team X", OwnerID: 3, Channels: []domain.Channel{
				{ID: 11, Name: "general", Messages: []domain.Message{
					{UserID: 3, Username: "alice", Content: "first"},
				}},
				{ID: 12, Name: "random"},
			}},
		}
		state.CurrentSphereID = lo.ToPtr(domain.ID(10))
		state.CurrentChannelID = lo.ToPtr(domain.ID(11))
		return state
	}

	t.Run("should append the trimmed content with a user snapshot", func(t *testing.T) {
		req := require.New(t)
		st, repo := newTestStore(t, ctrl, selectedState())
		repo.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
		svc := NewSphereService(st, NewSessionService(st, slog.Default()), slog.Default())

		err := svc.PostMessage("  hi  ")

		req.NoError(err)
		messages := st.State().Spheres[0].Channels[0].Messages
		req.Len(messages, 2)
		req.Equal(domain.Message{UserID: 3, Username: "alice", Content: "hi"}, messages[1])
	})

	t.Run("should be a no-op on whitespace-only content", func(t *testing.T) {
		req := require.New(t)
		st, repo := newTestStore(t, ctrl, selectedState())
		repo.EXPECT().Save(gomock.Any()).Times(0)
		svc := NewSphereService(st, NewSessionService(st, slog.Default()), slog.Default())

		err := svc.PostMessage("   \t ")

		req.ErrorIs(err, errors.ErrValidationFailed)
		req.Len(st.State().Spheres[0].Channels[0].Messages, 1)
	})

	t.Run("should be a no-op when no channel is selected", func(t *testing.T) {
		req := require.New(t)
		state := selectedState()
		state.CurrentChannelID = nil
		st, repo := newTestStore(t, ctrl, state)
		repo.EXPECT().Save(gomock.Any()).Times(0)
		svc := NewSphereService(st, NewSessionService(st, slog.Default()), slog.Default())

		err := svc.PostMessage("hi")

		req.ErrorIs(err, errors.ErrNoChannelSelected)
	})

	t.Run("should be a no-op when the selection dangles", func(t *testing.T) {
		req := require.New(t)
		state := selectedState()
		state.CurrentChannelID = lo.ToPtr(domain.ID(999))
		st, repo := newTestStore(t, ctrl, state)
		repo.EXPECT().Save(gomock.Any()).Times(0)
		svc := NewSphereService(st, NewSessionService(st, slog.Default()), slog.Default())

		err := svc.PostMessage("hi")

		req.ErrorIs(err, errors.ErrNoChannelSelected)
	})

	t.Run("should refuse a guest", func(t *testing.T) {
		req := require.New(t)
		state := selectedState()
		state.CurrentUser = nil
		st, repo := newTestStore(t, ctrl, state)
		repo.EXPECT().Save(gomock.Any()).Times(0)
		svc := NewSphereService(st, NewSessionService(st, slog.Default()), slog.Default())

		err := svc.PostMessage("hi")

		req.ErrorIs(err, errors.ErrNotAuthenticated)
	})
}
