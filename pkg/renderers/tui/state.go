package tui

import (
	"sort"

	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// Action names what the user did at one step.
type Action string

const (
	ActionFocus Action = "focus"
	ActionTap   Action = "tap"
	ActionSet   Action = "set"
	ActionRead  Action = "read"
	ActionJump  Action = "jump"
)

// Step is one entry of the exploration transcript.
type Step struct {
	Action       Action         `json:"action"`
	Element      string         `json:"element,omitempty"`
	Announcement string         `json:"announcement,omitempty"`
	Events       []screen.Event `json:"events,omitempty"`
}

// Transcript records an exploration session and the final screen state.
type Transcript struct {
	Screen        string          `json:"screen"`
	Title         string          `json:"title"`
	Steps         []Step          `json:"steps"`
	State         map[string]bool `json:"state"`
	Announcements []string        `json:"announcements"`
}

// NewTranscript starts an empty transcript for s.
func NewTranscript(s *screen.Screen) *Transcript {
	return &Transcript{Screen: s.ID(), Title: s.Title(), Steps: []Step{}}
}

func (t *Transcript) add(step Step) {
	t.Steps = append(t.Steps, step)
}

// Taps lists the ids tapped, in order.
func (t *Transcript) Taps() []string {
	var out []string
	for _, step := range t.Steps {
		if step.Action == ActionTap {
			out = append(out, step.Element)
		}
	}
	return out
}

// OnIDs lists the ids that are on in the final state, sorted.
func (t *Transcript) OnIDs() []string {
	var out []string
	for id, on := range t.State {
		if on {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
