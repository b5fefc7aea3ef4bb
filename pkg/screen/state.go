package screen

import "sort"

// EventKind distinguishes control changes from panel toggles.
type EventKind string

const (
	EventChange EventKind = "change"
	EventToggle EventKind = "toggle"
)

// Event reports one state change after it has been applied.
type Event struct {
	Screen       string    `json:"screen"`
	Element      string    `json:"element"`
	Kind         EventKind `json:"kind"`
	On           bool      `json:"on"`
	Announcement string    `json:"announcement,omitempty"`
}

// State is the per-screen record of every stateful element. It is written
// only from change callbacks.
type State struct {
	values map[string]bool
}

func newState() *State {
	return &State{values: make(map[string]bool)}
}

func (s *State) set(id string, on bool) {
	s.values[id] = on
}

// Get returns the recorded state for id.
func (s *State) Get(id string) (on bool, ok bool) {
	if s == nil {
		return false, false
	}
	on, ok = s.values[id]
	return on, ok
}

// Values returns a copy of every recorded state.
func (s *State) Values() map[string]bool {
	out := make(map[string]bool, len(s.values))
	for id, on := range s.values {
		out[id] = on
	}
	return out
}

// On lists the ids that are currently on, sorted.
func (s *State) On() []string {
	var out []string
	for id, on := range s.values {
		if on {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
