package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/testsupport"
)

// stubDriver answers Select by picking the first option containing the next
// scripted substring.
type stubDriver struct {
	selects      []string
	multi        [][]string
	inputs       []string
	confirm      []bool
	selectErr    error
	infoMessages []string
	selectPos    int
	multiPos     int
	inputPos     int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectErr != nil {
		return -1, s.selectErr
	}
	if s.selectPos >= len(s.selects) {
		return -1, errors.New("no select scripted")
	}
	want := s.selects[s.selectPos]
	s.selectPos++
	for i, option := range cfg.Options {
		if strings.Contains(option, want) {
			return i, nil
		}
	}
	return -1, errors.New("no option contains " + want)
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multi) {
		return nil, errors.New("no multiselect scripted")
	}
	wants := s.multi[s.multiPos]
	s.multiPos++
	var out []int
	for i, option := range cfg.Options {
		for _, want := range wants {
			if strings.HasPrefix(option, want) {
				out = append(out, i)
			}
		}
	}
	return out, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func decodeTranscript(t *testing.T, out []byte) Transcript {
	t.Helper()
	var transcript Transcript
	if err := json.Unmarshal(out, &transcript); err != nil {
		t.Fatalf("decode transcript: %v\n%s", err, out)
	}
	return transcript
}

func TestRender_TapFromTraversal(t *testing.T) {
	driver := &stubDriver{selects: []string{"Accept Terms, Unchecked, checkbox", menuDone}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	s := testsupport.MustScreen(t, "checkboxes")

	out, err := r.Render(context.Background(), s, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	transcript := decodeTranscript(t, out)
	if diff := cmp.Diff([]string{"accept-terms"}, transcript.Taps()); diff != "" {
		t.Fatalf("taps mismatch (-want +got):\n%s", diff)
	}
	if got := transcript.Steps[0].Announcement; got != "Accept Terms, Checked, checkbox" {
		t.Fatalf("unexpected announcement %q", got)
	}
	if !transcript.State["accept-terms"] {
		t.Fatalf("expected accept-terms on: %v", transcript.State)
	}
	if !containsString(driver.infoMessages, "» Accept Terms, Checked, checkbox") {
		t.Fatalf("announcement not printed: %v", driver.infoMessages)
	}
	if !containsString(transcript.Announcements, "Accept Terms, Checked, checkbox") {
		t.Fatalf("final announcements stale: %v", transcript.Announcements)
	}
}

func TestRender_SetSeveralStates(t *testing.T) {
	driver := &stubDriver{
		selects: []string{menuSet, menuDone},
		multi:   [][]string{{"Email (", "Phone ("}},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	s := testsupport.MustScreen(t, "checkboxes")

	out, err := r.Render(context.Background(), s, render.RenderOptions{Subset: render.ParseSubset("good")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	transcript := decodeTranscript(t, out)
	if diff := cmp.Diff([]string{"email", "phone"}, transcript.OnIDs()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if _, ok := transcript.State["accept-terms-bad"]; ok {
		t.Fatalf("subset leaked bad section state: %v", transcript.State)
	}
	for _, step := range transcript.Steps {
		if step.Action != ActionSet {
			t.Fatalf("unexpected step %+v", step)
		}
	}
}

func TestRender_JumpAndActivate(t *testing.T) {
	driver := &stubDriver{
		selects: []string{menuJump, menuDone},
		inputs:  []string{"good-example-single-checkbox-details"},
		confirm: []bool{true},
	}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	s := testsupport.MustScreen(t, "checkboxes")

	out, err := r.Render(context.Background(), s, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	open, err := s.Checked("good-example-single-checkbox-details")
	if err != nil || !open {
		t.Fatalf("expected panel open, got %v (%v)", open, err)
	}
	text := string(out)
	for _, want := range []string{"Checkboxes", "Steps", "jump good-example-single-checkbox-details", "tap good-example-single-checkbox-details", "State"} {
		if !strings.Contains(text, want) {
			t.Fatalf("pretty output missing %q:\n%s", want, text)
		}
	}
	if r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRender_ReadWholeScreen(t *testing.T) {
	driver := &stubDriver{selects: []string{menuRead, menuDone}}
	r, err := New(WithPromptDriver(driver), WithTheme(Theme{InfoPrefix: "> "}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	s := testsupport.MustScreen(t, "checkboxes")
	if _, err := r.Render(context.Background(), s, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !containsString(driver.infoMessages, "> Preferred contact method(s):, group, Email, Unchecked, checkbox") {
		t.Fatalf("group entry not announced: %v", driver.infoMessages)
	}
}

func TestRender_Errors(t *testing.T) {
	s := testsupport.MustScreen(t, "checkboxes")

	aborting, _ := New(WithPromptDriver(&stubDriver{selectErr: ErrAborted}))
	if _, err := aborting.Render(context.Background(), s, render.RenderOptions{}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	looping, _ := New(WithPromptDriver(&stubDriver{selects: []string{menuRead, menuRead, menuRead}}), WithMaxSteps(2))
	if _, err := looping.Render(context.Background(), s, render.RenderOptions{}); !errors.Is(err, ErrStepLimit) {
		t.Fatalf("expected ErrStepLimit, got %v", err)
	}

	plain, _ := New(WithPromptDriver(&stubDriver{}))
	if _, err := plain.Render(context.Background(), s, render.RenderOptions{Format: "xml"}); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	if _, err := plain.Render(context.Background(), nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected nil screen error")
	}

	failing, _ := New(
		WithPromptDriver(&stubDriver{selects: []string{menuDone}}),
		WithTranscriptTransformer(func(*Transcript) error { return errors.New("boom") }),
	)
	if _, err := failing.Render(context.Background(), s, render.RenderOptions{}); err == nil {
		t.Fatalf("expected transformer error")
	}
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
