package a11y

import "testing"

func TestPanel_DetailsScenario(t *testing.T) {
	p := NewPanel("Details", "The good single checkbox example uses a custom control.", "Good Example Single Checkbox")
	root := p.Semantics()

	if p.IsOpen() {
		t.Fatalf("panel must start closed")
	}
	if Reachable(p.DetailID(), root) {
		t.Fatalf("closed detail region must be unreachable")
	}
	if p.State() != PanelCollapsed || p.Glyph() != GlyphCollapsed {
		t.Fatalf("initial glyph: got %s/%s", p.State(), p.Glyph())
	}

	p.Toggle()
	root = p.Semantics()
	if !Reachable(p.DetailID(), root) {
		t.Fatalf("open detail region must be reachable")
	}
	if p.State() != PanelExpanded || p.Glyph() != GlyphExpanded {
		t.Fatalf("open glyph: got %s/%s", p.State(), p.Glyph())
	}

	p.Toggle()
	root = p.Semantics()
	if p.State() != PanelCollapsed {
		t.Fatalf("glyph after second toggle: want collapsed, got %s", p.State())
	}
	if Reachable(p.DetailID(), root) {
		t.Fatalf("detail region reachable after closing")
	}
}

func TestPanel_VisibilityMatchesOpenState(t *testing.T) {
	p := NewPanel("Details", "text", "hint")
	for i := 0; i < 6; i++ {
		if p.DetailVisible() != p.IsOpen() {
			t.Fatalf("step %d: visible=%v open=%v", i, p.DetailVisible(), p.IsOpen())
		}
		if p.Header().Flags.Has(FlagExpanded) != p.IsOpen() {
			t.Fatalf("step %d: header expanded flag out of sync", i)
		}
		if (p.Glyph() == GlyphExpanded) != p.IsOpen() {
			t.Fatalf("step %d: glyph out of sync", i)
		}
		p.Toggle()
	}
}

func TestPanel_HintDistinguishesSiblings(t *testing.T) {
	good := NewPanel("Details", "a", "Good Example Checkbox Group")
	bad := NewPanel("Details", "b", "Bad Example Checkbox Group")

	if good.ID() == bad.ID() {
		t.Fatalf("sibling panels share id %q", good.ID())
	}
	if got := good.Header().Announcement(); got != "Details, button, collapsed, Good Example Checkbox Group" {
		t.Fatalf("announcement: got %q", got)
	}
}

func TestPanel_ObserversReceiveOpenState(t *testing.T) {
	var seen []bool
	p := NewPanel("Details", "text", "hint", WithToggleObserver(func(open bool) {
		seen = append(seen, open)
	}))
	p.OnToggle(func(open bool) {
		if open != p.DetailVisible() {
			t.Fatalf("observer saw open=%v before the region was updated", open)
		}
	})

	p.Activate()
	p.Activate()

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("unexpected observed states: %v", seen)
	}
}

func TestPanel_ObserverAddedDuringToggleWaitsForNextToggle(t *testing.T) {
	calls := 0
	p := NewPanel("Details", "text", "hint")
	p.OnToggle(func(bool) {
		p.OnToggle(func(bool) { calls++ })
	})

	p.Toggle()
	if calls != 0 {
		t.Fatalf("observer added during toggle ran in the same round")
	}
	p.Toggle()
	if calls != 1 {
		t.Fatalf("expected one late call, got %d", calls)
	}
}
