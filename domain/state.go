package domain

// State is the whole application tree: every account, every sphere with
// its nested channels and messages, plus the session pointers. It is
// persisted as one JSON document and always rewritten as a unit, so
// memory and storage never diverge field by field.
//
// The three session fields are pointers: absent selections serialize as
// null, matching the stored layout.
type State struct {
	Users            []User       `json:"users"`
	Spheres          []Sphere     `json:"servers"`
	CurrentUser      *SessionUser `json:"currentUser"`
	CurrentSphereID  *ID          `json:"currentServerId"`
	CurrentChannelID *ID          `json:"currentChannelId"`
}

// UserByName returns the user with the given username, or nil.
// Usernames are matched case-sensitively.
func (s *State) UserByName(username string) *User {
	for i := range s.Users {
		if s.Users[i].Username == username {
			return &s.Users[i]
		}
	}
	return nil
}

// Sphere returns the sphere with the given id, or nil.
func (s *State) Sphere(id ID) *Sphere {
	for i := range s.Spheres {
		if s.Spheres[i].ID == id {
			return &s.Spheres[i]
		}
	}
	return nil
}

// CurrentSphere resolves the selected sphere. A nil result covers both
// the no-selection case and a selection pointing at a sphere that does
// not exist; callers treat the two the same way.
func (s *State) CurrentSphere() *Sphere {
	if s.CurrentSphereID == nil {
		return nil
	}
	return s.Sphere(*s.CurrentSphereID)
}

// CurrentChannel resolves the selected channel within the selected
// sphere, or nil when either selection is absent or dangling.
func (s *State) CurrentChannel() *Channel {
	sphere := s.CurrentSphere()
	if sphere == nil || s.CurrentChannelID == nil {
		return nil
	}
	return sphere.Channel(*s.CurrentChannelID)
}

// MaxID returns the highest entity id present anywhere in the tree.
// The store seeds its counter from it after a load.
func (s *State) MaxID() ID {
	var highest ID
	for _, u := range s.Users {
		if u.ID > highest {
			highest = u.ID
		}
	}
	for _, sp := range s.Spheres {
		if sp.ID > highest {
			highest = sp.ID
		}
		for _, c := range sp.Channels {
			if c.ID > highest {
				highest = c.ID
			}
		}
	}
	return highest
}
