package domain

type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Directory maps an activity name to its record.
type Directory map[string]Activity

func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the participants slice.
func (a *Activity) Clone() Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}

func (d Directory) Clone() Directory {
	out := make(Directory, len(d))
	for name, a := range d {
		out[name] = a.Clone()
	}
	return out
}
