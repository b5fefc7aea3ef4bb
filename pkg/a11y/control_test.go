package a11y

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func assertConsistent(t *testing.T, c *Control) {
	t.Helper()

	p := c.Projection()
	if want := c.Values().For(c.Checked()); p.Value != want {
		t.Fatalf("accessible value %q does not match state %v (want %q)", p.Value, c.Checked(), want)
	}
	if c.AccessibleValue() != p.Value {
		t.Fatalf("AccessibleValue %q diverges from projection %q", c.AccessibleValue(), p.Value)
	}
	if c.Indicator().On != c.Checked() {
		t.Fatalf("indicator on=%v but checked=%v", c.Indicator().On, c.Checked())
	}
	switch c.Kind() {
	case KindToggleButton:
		if p.Flags.Has(FlagSelected) != c.Checked() {
			t.Fatalf("selected trait %v does not match state %v", p.Flags.Has(FlagSelected), c.Checked())
		}
	default:
		if p.Flags.Has(FlagChecked) != c.Checked() {
			t.Fatalf("checked flag %v does not match state %v", p.Flags.Has(FlagChecked), c.Checked())
		}
	}
}

func TestControl_AcceptTermsScenario(t *testing.T) {
	c := NewControl("Accept Terms", false)

	if got := c.AccessibleValue(); got != "Unchecked" {
		t.Fatalf("initial value: want Unchecked, got %q", got)
	}
	if got := c.Indicator().Glyph; got != "square" {
		t.Fatalf("initial glyph: want square, got %q", got)
	}

	c.Toggle()

	if !c.Checked() {
		t.Fatalf("expected checked after toggle")
	}
	if got := c.AccessibleValue(); got != "Checked" {
		t.Fatalf("value after toggle: want Checked, got %q", got)
	}
	if got := c.Indicator().Glyph; got != "checkmark.square" {
		t.Fatalf("glyph after toggle: want checkmark.square, got %q", got)
	}
	if got := c.Projection().Announcement(); got != "Accept Terms, Checked, checkbox" {
		t.Fatalf("announcement: got %q", got)
	}
}

func TestControl_ValueTracksStateAcrossToggles(t *testing.T) {
	kinds := []Kind{KindCheckbox, KindSwitch, KindToggleButton}
	for _, kind := range kinds {
		for _, initial := range []bool{false, true} {
			c := NewControl("Subject", initial, WithKind(kind))
			assertConsistent(t, c)
			for i := 0; i < 7; i++ {
				c.Toggle()
				assertConsistent(t, c)
			}
		}
	}
}

func TestControl_DoubleToggleRoundTrip(t *testing.T) {
	c := NewControl("Display Mode", true,
		WithKind(KindSwitch),
		WithValueStrings(ValueStrings{On: "Dark", Off: "Light"}),
		WithHint("Switches the colour scheme"),
	)
	beforeProjection := c.Projection()
	beforeIndicator := c.Indicator()

	c.Toggle()
	c.Toggle()

	if diff := cmp.Diff(beforeProjection, c.Projection()); diff != "" {
		t.Fatalf("projection drifted (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(beforeIndicator, c.Indicator()); diff != "" {
		t.Fatalf("indicator drifted (-before +after):\n%s", diff)
	}
}

func TestControl_ObserverSeesSyncedState(t *testing.T) {
	var seen []bool
	var c *Control
	c = NewControl("Email", false, WithObserver(func(on bool) {
		if c.AccessibleValue() != CheckedValues.For(on) {
			t.Fatalf("observer ran before projection was updated")
		}
		if c.Indicator().On != on {
			t.Fatalf("observer ran before indicator was updated")
		}
		seen = append(seen, on)
	}))

	c.Toggle()
	c.Toggle()
	c.SetChecked(true)
	c.SetChecked(true)

	if diff := cmp.Diff([]bool{true, false, true}, seen); diff != "" {
		t.Fatalf("observed states mismatch (-want +got):\n%s", diff)
	}
}

func TestControl_DefaultsPerKind(t *testing.T) {
	cases := []struct {
		kind     Kind
		role     Role
		onValue  string
		offValue string
		onGlyph  string
	}{
		{KindCheckbox, RoleCheckbox, "Checked", "Unchecked", "checkmark.square"},
		{KindSwitch, RoleSwitch, "On", "Off", "switch.on"},
		{KindToggleButton, RoleButton, "On", "Off", "bookmark.fill"},
	}
	for _, tc := range cases {
		c := NewControl("Item", true, WithKind(tc.kind))
		if c.Projection().Role != tc.role {
			t.Fatalf("%s role: want %s, got %s", tc.kind, tc.role, c.Projection().Role)
		}
		if c.Values().On != tc.onValue || c.Values().Off != tc.offValue {
			t.Fatalf("%s values: got %+v", tc.kind, c.Values())
		}
		if c.Indicator().Glyph != tc.onGlyph {
			t.Fatalf("%s glyph: want %s, got %s", tc.kind, tc.onGlyph, c.Indicator().Glyph)
		}
	}
}

func TestControl_AccessibleLabelFallsBackToLabel(t *testing.T) {
	plain := NewControl("Use Face ID to log in.", false, WithKind(KindSwitch))
	if plain.AccessibleLabel() != "Use Face ID to log in." {
		t.Fatalf("expected visible label as accessible name, got %q", plain.AccessibleLabel())
	}

	bookmark := NewControl("", false,
		WithKind(KindToggleButton),
		WithAccessibleLabel("Bookmark Austin Location"),
	)
	if bookmark.Projection().Label != "Bookmark Austin Location" {
		t.Fatalf("explicit accessible label not projected: %q", bookmark.Projection().Label)
	}
	if bookmark.ID() != "bookmark-austin-location" {
		t.Fatalf("id not derived from accessible label: %q", bookmark.ID())
	}

	bookmark.Activate()
	if got := bookmark.Projection().Traits(); !cmp.Equal(got, []string{"button", "selected"}) {
		t.Fatalf("traits after activation: %v", got)
	}
}

func TestControl_DisabledIgnoresActivation(t *testing.T) {
	c := NewControl("Locked", false, WithDisabled())
	c.Activate()

	if c.Checked() {
		t.Fatalf("disabled control toggled on activation")
	}
	if c.Projection().Flags.Has(FlagEnabled) {
		t.Fatalf("disabled control projected as enabled")
	}
	if got := c.Projection().Announcement(); got != "Locked, Unchecked, checkbox, dimmed" {
		t.Fatalf("announcement: got %q", got)
	}

	c.SetChecked(true)
	if !c.Checked() {
		t.Fatalf("SetChecked must apply even when disabled")
	}
}

func TestControl_ObserverAddedDuringNotifyWaitsForNextChange(t *testing.T) {
	var late []bool
	c := NewControl("Email", false)
	c.OnChange(func(bool) {
		c.OnChange(func(on bool) { late = append(late, on) })
	})

	c.Toggle()
	if len(late) != 0 {
		t.Fatalf("observer added during notify ran in the same round: %v", late)
	}
	c.Toggle()
	if diff := cmp.Diff([]bool{false}, late); diff != "" {
		t.Fatalf("late observer mismatch (-want +got):\n%s", diff)
	}
}
