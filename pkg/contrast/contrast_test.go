package contrast

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRatio_KnownPairs(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "black on white", a: "#000000", b: "#ffffff", want: 21},
		{name: "same colour", a: "#DC143C", b: "#DC143C", want: 1},
		{name: "short hex", a: "000", b: "fff", want: 21},
		{name: "dark green heading", a: "#006600", b: "#FFFFFF", want: 7.24},
		{name: "crimson heading", a: "#DC143C", b: "#FFFFFF", want: 4.99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Ratio(tc.a, tc.b)
			if err != nil {
				t.Fatalf("ratio: %v", err)
			}
			if math.Abs(got-tc.want) > 0.02 {
				t.Fatalf("ratio %s vs %s = %.3f, want %.2f", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRatio_Symmetric(t *testing.T) {
	ab, _ := Ratio("#8E8E93", "#FFFFFF")
	ba, _ := Ratio("#FFFFFF", "#8E8E93")
	if ab != ba {
		t.Fatalf("expected symmetric ratio, got %v and %v", ab, ba)
	}
}

func TestRatio_InvalidColour(t *testing.T) {
	if _, err := Ratio("not-a-colour", "#fff"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestCheck_ToggleOffState(t *testing.T) {
	tokens := map[string]string{
		"background":   "#FFFFFF",
		"toggle-off":   "#F0F0F0",
		"section-good": "#006600",
	}
	results, err := Check(tokens, DefaultRules())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected rules with missing tokens to be skipped, got %d results", len(results))
	}

	var failing []string
	for _, result := range Failures(results) {
		failing = append(failing, result.Name)
	}
	if diff := cmp.Diff([]string{"toggle-off"}, failing); diff != "" {
		t.Fatalf("failures mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_GrayOffStatePasses(t *testing.T) {
	results, err := Check(map[string]string{"background": "#FFFFFF", "toggle-off": "#8E8E93"}, DefaultRules())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(results) != 1 || !results[0].Pass {
		t.Fatalf("expected gray off state to pass 3:1, got %+v", results)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(4.5); got != "4.50:1" {
		t.Fatalf("unexpected format %q", got)
	}
}
