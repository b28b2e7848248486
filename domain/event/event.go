package event

import (
	"time"

	"chatsphere/domain"

	"github.com/google/uuid"
)

// DomainEvent is what the store fans out to sinks after a commit.
// Events are ephemeral: they carry enough context for a renderer to
// decide what to refresh, and are never persisted.
type DomainEvent interface {
	OccurredAt() time.Time
}

// StateChanged signals that any part of the tree may have changed and a
// full re-projection is needed.
type StateChanged struct {
	At time.Time
}

func (s StateChanged) OccurredAt() time.Time { return s.At }

// MessagePosted signals a single append to one channel log, so sinks
// can refresh the message list alone.
type MessagePosted struct {
	ID        uuid.UUID
	SphereID  domain.ID
	ChannelID domain.ID
	Author    string
	Content   string
	At        time.Time
}

func (m MessagePosted) OccurredAt() time.Time { return m.At }
