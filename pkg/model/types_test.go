package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestItem_Kind(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want ItemKind
	}{
		{name: "text", item: Item{Text: "intro"}, want: ItemText},
		{name: "heading", item: Item{Heading: "Locations"}, want: ItemHeading},
		{name: "control", item: Item{Control: &Control{Label: "Accept Terms"}}, want: ItemControl},
		{name: "group", item: Item{Group: &Group{Label: "Contact"}}, want: ItemGroup},
		{name: "antipattern", item: Item{AntiPattern: &AntiPattern{Kind: AntiPatternImageCheckbox}}, want: ItemAntiPattern},
		{name: "empty", item: Item{Text: "  "}, want: ""},
		{name: "ambiguous", item: Item{Text: "x", Control: &Control{}}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.Kind(); got != tc.want {
				t.Fatalf("Kind() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScreen_Summarize(t *testing.T) {
	screen := Screen{
		ID:    "checkboxes",
		Title: "Checkboxes",
		Order: 1,
		Sections: []Section{
			{Kind: SectionGood, Examples: []Example{{Title: "a"}, {Title: "b"}}},
			{Kind: SectionBad, Examples: []Example{{Title: "c"}}},
		},
	}
	want := Summary{ID: "checkboxes", Title: "Checkboxes", Order: 1, Examples: 3}
	if diff := cmp.Diff(want, screen.Summarize()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	if got := screen.Sections[1].DisplayTitle(); got != "Bad Examples" {
		t.Fatalf("unexpected section title %q", got)
	}
	if got := (Details{Text: "x"}).DisplayTitle(); got != "Details" {
		t.Fatalf("unexpected details title %q", got)
	}
}
