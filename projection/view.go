// Package projection derives display representations from the state
// tree. Projections are pure: they never mutate state or emit events,
// and they stay defensive about selections that resolve to nothing.
package projection

import (
	"fmt"

	"chatsphere/domain"

	"github.com/samber/lo"
)

type SphereItem struct {
	ID      domain.ID
	Name    string
	IconURL string
	Active  bool
}

type ChannelItem struct {
	ID     domain.ID
	Name   string
	Active bool
}

type MessageItem struct {
	Username string
	Content  string
}

// View is everything a renderer needs for one frame: which of the two
// top-level modes to show, the three lists with their active marks, and
// the conditional defaults for the header and input areas.
type View struct {
	Authenticated bool
	Username      string

	Spheres    []SphereItem
	SphereName string

	Channels    []ChannelItem
	ChannelName string

	Messages         []MessageItem
	InputEnabled     bool
	InputPlaceholder string
}

// Project builds the view for the given state.
func Project(state domain.State) View {
	if state.CurrentUser == nil {
		return View{}
	}

	view := View{
		Authenticated: true,
		Username:      state.CurrentUser.Username,
		Spheres: lo.Map(state.Spheres, func(s domain.Sphere, _ int) SphereItem {
			return SphereItem{
				ID:      s.ID,
				Name:    s.Name,
				IconURL: lo.CoalesceOrEmpty(s.IconURL, domain.DefaultIconURL),
				Active:  state.CurrentSphereID != nil && s.ID == *state.CurrentSphereID,
			}
		}),
	}

	sphere := state.CurrentSphere()
	if sphere == nil {
		view.SphereName = "Select a Sphere"
		return view
	}

	view.SphereName = sphere.Name
	view.Channels = lo.Map(sphere.Channels, func(c domain.Channel, _ int) ChannelItem {
		return ChannelItem{
			ID:     c.ID,
			Name:   c.Name,
			Active: state.CurrentChannelID != nil && c.ID == *state.CurrentChannelID,
		}
	})

	channel := state.CurrentChannel()
	if channel == nil {
		view.InputPlaceholder = "Select a channel"
		return view
	}

	view.ChannelName = channel.Name
	view.InputEnabled = true
	view.InputPlaceholder = fmt.Sprintf("Message #%s", channel.Name)
	view.Messages = lo.Map(channel.Messages, func(m domain.Message, _ int) MessageItem {
		return MessageItem{Username: m.Username, Content: m.Content}
	})
	return view
}
