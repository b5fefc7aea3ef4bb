// Package testsupport holds fixtures shared by package tests: the embedded
// catalog, live screens and parsed HTML documents.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-a11ycatalog/pkg/catalog"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// MustCatalog loads the embedded catalog or fails the test.
func MustCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return store
}

// MustScreenDefinition returns one embedded screen definition.
func MustScreenDefinition(t *testing.T, id string) model.Screen {
	t.Helper()
	def, ok := MustCatalog(t).Screen(id)
	if !ok {
		t.Fatalf("screen %q not in catalog", id)
	}
	return def
}

// MustScreen builds a live screen from the embedded catalog.
func MustScreen(t *testing.T, id string, options ...screen.Option) *screen.Screen {
	t.Helper()
	s, err := screen.Build(MustScreenDefinition(t, id), options...)
	if err != nil {
		t.Fatalf("build screen %q: %v", id, err)
	}
	return s
}

// MustTap taps each id in order.
func MustTap(t *testing.T, s *screen.Screen, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if _, err := s.Tap(id); err != nil {
			t.Fatalf("tap %q: %v", id, err)
		}
	}
}

// MustParseHTML parses rendered markup into a goquery document.
func MustParseHTML(t *testing.T, data []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// MustFind returns the single element matching selector.
func MustFind(t *testing.T, doc *goquery.Document, selector string) *goquery.Selection {
	t.Helper()
	sel := doc.Find(selector)
	if sel.Length() != 1 {
		t.Fatalf("selector %q matched %d elements, want 1", selector, sel.Length())
	}
	return sel
}

// MustAttr returns an attribute of the single element matching selector.
func MustAttr(t *testing.T, doc *goquery.Document, selector, attr string) string {
	t.Helper()
	value, ok := MustFind(t, doc, selector).Attr(attr)
	if !ok {
		t.Fatalf("selector %q has no %s attribute", selector, attr)
	}
	return value
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs a template render that also writes to an
// io.Writer and returns both payloads.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
