package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	envFile := filepath.Join(t.TempDir(), "none.env")
	root.SetArgs(append([]string{"--env-file", envFile}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "render", "explore", "audit", "serve"}
	found := make(map[string]bool)
	for _, c := range newRootCmd().Commands() {
		found[c.Name()] = true
	}
	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestListCommand(t *testing.T) {
	out, err := runCmd(t, "list", "-o", "json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var summaries []struct {
		ID       string `json:"id"`
		Examples int    `json:"examples"`
	}
	if err := json.Unmarshal([]byte(out), &summaries); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(summaries) == 0 || summaries[0].ID != "checkboxes" || summaries[0].Examples == 0 {
		t.Fatalf("unexpected summaries %+v", summaries)
	}

	table, err := runCmd(t, "list")
	if err != nil {
		t.Fatalf("list table: %v", err)
	}
	if !strings.Contains(table, "EXAMPLES") || !strings.Contains(table, "toggles") {
		t.Fatalf("unexpected table:\n%s", table)
	}

	if _, err := runCmd(t, "list", "-o", "xml"); err == nil {
		t.Fatalf("expected unsupported output error")
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := runCmd(t, "render", "checkboxes", "--renderer", "semantic", "--format", "yaml", "--tap", "accept-terms")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "screen: checkboxes") || !strings.Contains(out, "Accept Terms, Checked, checkbox") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	html, err := runCmd(t, "render", "toggles", "--renderer", "html", "--variant", "dark")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(html, `data-variant="dark"`) {
		t.Fatalf("variant flag not applied")
	}

	if _, err := runCmd(t, "render", "chekboxes"); err == nil || !strings.Contains(err.Error(), `did you mean "checkboxes"`) {
		t.Fatalf("expected suggestion error, got %v", err)
	}
}

func TestAuditCommand(t *testing.T) {
	out, err := runCmd(t, "audit", "checkboxes", "toggles", "--html", "-o", "json")
	if err != nil {
		t.Fatalf("good examples should audit clean: %v", err)
	}
	var rows []auditRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	sources := map[string]bool{}
	for _, row := range rows {
		if row.Section != "bad" {
			t.Fatalf("finding outside the bad section: %+v", row)
		}
		sources[row.Source] = true
	}
	if !sources["tree"] || !sources["html"] {
		t.Fatalf("expected tree and html findings, got %v", sources)
	}
}

func TestWriteAuditRowsFailsGood(t *testing.T) {
	var buf bytes.Buffer
	rows := []auditRow{{Screen: "x", Section: "good", Source: "tree", Rule: "label-missing", Message: "m"}}
	if err := writeAuditRows(&buf, "table", rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "label-missing") {
		t.Fatalf("unexpected table:\n%s", buf.String())
	}
}
