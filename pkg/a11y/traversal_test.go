package a11y

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTraverse_SkipsHiddenSubtrees(t *testing.T) {
	root := NewNode(Projection{ID: "screen"},
		NewHeading("title", "Checkboxes").Semantics(),
		NewNode(Projection{ID: "hidden", Flags: FlagHidden},
			NewNode(Projection{ID: "inner", Label: "inner", Flags: FlagFocusable}),
		),
		NewText("intro", "Intro").Semantics(),
	)

	var ids []string
	for _, p := range Traverse(root) {
		ids = append(ids, p.ID)
	}
	if diff := cmp.Diff([]string{"title", "intro"}, ids); diff != "" {
		t.Fatalf("traversal (-want +got):\n%s", diff)
	}
	if root.Find("inner") == nil {
		t.Fatalf("Find should still locate hidden nodes")
	}
}

func TestFlags_Names(t *testing.T) {
	f := FlagFocusable.Set(FlagChecked).Set(FlagHasCheckedState).Set(FlagToggles)
	if diff := cmp.Diff([]string{"has-checked-state", "checked", "focusable", "toggles"}, f.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
	if f.Clear(FlagChecked).Has(FlagChecked) {
		t.Fatalf("clear did not remove flag")
	}
	if Flags(0).Has(0) {
		t.Fatalf("empty flag must never report as set")
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Preferred contact method(s):": "preferred-contact-method-s",
		"  Accept Terms ":              "accept-terms",
		"Good Example `Toggle`":        "good-example-toggle",
		"":                             "",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q): want %q, got %q", in, want, got)
		}
	}
}
