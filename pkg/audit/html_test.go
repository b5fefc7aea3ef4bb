package audit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHTML_CompliantMarkup(t *testing.T) {
	doc := `<main>
<button type="button" id="accept-terms" role="checkbox" aria-checked="false" data-state="off">
  <span class="glyph" aria-hidden="true">square</span><span>Accept Terms</span>
</button>
<div role="group" aria-labelledby="contact-label"><span id="contact-label">Preferred contact method(s):</span>
  <button type="button" id="email" role="checkbox" aria-checked="true" data-state="on">Email</button>
</div>
<button type="button" id="details" aria-expanded="false" aria-controls="details-detail">Details</button>
<div id="details-detail" hidden>explanation</div>
</main>`
	findings, err := HTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}

func TestHTML_BrokenMarkup(t *testing.T) {
	doc := `<main>
<button type="button" id="image-box" data-state="on"><span aria-hidden="true">checkmark.square</span>Accept Terms</button>
<span>Use Face ID to log in.</span><button type="button" id="face-id" role="switch"><span aria-hidden="true">switch.off</span></button>
<div role="group" id="contact"></div>
<button type="button" id="license" aria-expanded="false" aria-controls="license-detail">License Agreement</button>
<div id="license-detail" class="is-collapsed">Lorem ipsum</div>
</main>`
	findings, err := HTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	want := []string{
		RuleHTMLCheckedMissing,
		RuleHTMLExpanded,
		RuleHTMLGroupUnlabeled,
		RuleHTMLNameMissing,
		RuleHTMLStateMissing,
	}
	if diff := cmp.Diff(want, Rules(findings)); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
	for _, f := range findings {
		if f.Rule == RuleHTMLNameMissing && f.ElementID != "face-id" {
			t.Fatalf("expected only the switch to be unnamed, got %s", f.ElementID)
		}
	}
}
