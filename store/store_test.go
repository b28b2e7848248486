package store

import (
	"fmt"
	"log/slog"
	"testing"

	"chatsphere/domain"
	"chatsphere/domain/event"
	"chatsphere/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	events []event.DomainEvent
}

func (r *recordingSink) Consume(e event.DomainEvent) {
	r.events = append(r.events, e)
}

func Test_NextID_Starts_Past_Highest_Existing_ID(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIStateRepository(ctrl)

	state := domain.State{
		Users: []domain.User{{ID: 2, Username: "admin", Password: "password"}},
		Spheres: []domain.Sphere{
			{ID: 3, Name: "one", Channels: []domain.Channel{{ID: 7, Name: "general"}}},
		},
	}
	repo.EXPECT().Load().Return(state, nil)

	st, err := NewStore(repo, slog.Default())
	req.NoError(err)

	req.Equal(domain.ID(8), st.NextID())
	req.Equal(domain.ID(9), st.NextID())
	req.Equal(domain.ID(10), st.NextID())
}

func Test_Commit_Persists_Then_Notifies_In_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIStateRepository(ctrl)

	repo.EXPECT().Load().Return(domain.State{}, nil)
	saved := false
	repo.EXPECT().Save(gomock.Any()).DoAndReturn(func(domain.State) error {
		saved = true
		return nil
	}).Times(1)

	st, err := NewStore(repo, slog.Default())
	req.NoError(err)

	sink := &recordingSink{}
	st.RegisterSink(sink)

	st.Commit(event.StateChanged{}, event.MessagePosted{Content: "hi"})

	req.True(saved)
	req.Len(sink.events, 2)
	req.IsType(event.StateChanged{}, sink.events[0])
	req.IsType(event.MessagePosted{}, sink.events[1])
}

func Test_Commit_Notifies_Even_When_Save_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIStateRepository(ctrl)

	repo.EXPECT().Load().Return(domain.State{}, nil)
	repo.EXPECT().Save(gomock.Any()).Return(fmt.Errorf("storage full"))

	st, err := NewStore(repo, slog.Default())
	req.NoError(err)

	sink := &recordingSink{}
	st.RegisterSink(sink)

	st.Commit(event.StateChanged{})
	req.Len(sink.events, 1)
}

func Test_NewStore_Propagates_Load_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIStateRepository(ctrl)

	repo.EXPECT().Load().Return(domain.State{}, fmt.Errorf("disk on fire"))

	_, err := NewStore(repo, slog.Default())
	req.Error(err)
}
