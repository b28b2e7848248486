package domain

// DefaultIconURL is used when a sphere is created without an icon.
const DefaultIconURL = "default-server-icon.png"

// Sphere is a named container of channels, owned by the user who
// created it. Spheres are never renamed or deleted.
type Sphere struct {
	ID       ID        `json:"id"`
	Name     string    `json:"name"`
	OwnerID  ID        `json:"ownerId"`
	IconURL  string    `json:"iconUrl"`
	Channels []Channel `json:"channels"`
}

// Channel is an ordered, append-only message log within a sphere.
type Channel struct {
	ID       ID        `json:"id"`
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
}

// Channel returns the channel with the given id, or nil.
func (s *Sphere) Channel(id ID) *Channel {
	if s == nil {
		return nil
	}
	for i := range s.Channels {
		if s.Channels[i].ID == id {
			return &s.Channels[i]
		}
	}
	return nil
}

// PostMessage appends a message to the channel log.
func (c *Channel) PostMessage(message Message) {
	c.Messages = append(c.Messages, message)
}
