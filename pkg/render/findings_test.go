package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-a11ycatalog/pkg/audit"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
	"github.com/goliatone/go-a11ycatalog/pkg/testsupport"
)

func TestIndexFindings_SplitsElementAndScreenMessages(t *testing.T) {
	s := testsupport.MustScreen(t, "checkboxes")

	stateMissing := audit.Finding{
		Rule:      audit.RuleStateMissing,
		Severity:  audit.SeverityError,
		ElementID: "accept-terms-bad",
		Message:   "toggles without exposing state",
	}
	findings := []screen.Finding{
		{Finding: stateMissing, Screen: "checkboxes"},
		{Finding: stateMissing, Screen: "checkboxes"},
		{Finding: audit.Finding{Rule: audit.RuleGroupMissing, Severity: audit.SeverityError, ElementID: "elsewhere", Message: "not here"}},
		{Finding: audit.Finding{Rule: audit.RuleGroupMissing, Severity: audit.SeverityWarning, Message: "screen wide"}},
	}

	index := render.IndexFindings(s, findings)

	want := []string{"error [state-missing] accept-terms-bad: toggles without exposing state"}
	if diff := cmp.Diff(want, index.For("accept-terms-bad")); diff != "" {
		t.Fatalf("element messages mismatch (-want +got):\n%s", diff)
	}
	wantScreen := []string{
		"error [group-missing] elsewhere: not here",
		"warning [group-missing] screen wide",
	}
	if diff := cmp.Diff(wantScreen, index.Screen); diff != "" {
		t.Fatalf("screen messages mismatch (-want +got):\n%s", diff)
	}
	if index.Len() != 3 {
		t.Fatalf("expected 3 messages, got %d", index.Len())
	}
}

func TestIndexFindings_FromAudit(t *testing.T) {
	s := testsupport.MustScreen(t, "checkboxes")
	findings, err := s.Audit()
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	index := render.IndexFindings(s, findings)
	if len(index.For("accept-terms-bad")) == 0 {
		t.Fatalf("expected findings on the image checkbox, got %+v", index)
	}
	if len(index.For("accept-terms")) != 0 {
		t.Fatalf("compliant checkbox should be clean, got %v", index.For("accept-terms"))
	}
}

func TestIndexFindings_Empty(t *testing.T) {
	index := render.IndexFindings(nil, nil)
	if index.Elements != nil || index.Screen != nil || index.Len() != 0 {
		t.Fatalf("expected empty index, got %+v", index)
	}
}
