package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/catalog"
	"github.com/goliatone/go-a11ycatalog/pkg/contrast"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
	"github.com/goliatone/go-a11ycatalog/pkg/theming"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	themeDir := flag.String("themes", "", "theme manifest directory (embedded themes if empty)")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-themes dir] [catalog dirs...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint catalog screens and theme palettes: good examples must audit clean, bad examples must be flagged, and every palette must meet WCAG contrast.\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	violations, err := run(flag.Args(), *themeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}
	if len(violations) > 0 {
		report(os.Stderr, violations)
		os.Exit(1)
	}
}

func run(dirs []string, themeDir string) ([]violation, error) {
	var violations []violation
	if len(dirs) == 0 {
		linted, err := lintCatalog("<embedded>", catalog.EmbeddedFS())
		if err != nil {
			return nil, err
		}
		violations = append(violations, linted...)
	}
	for _, dir := range dirs {
		linted, err := lintCatalog(dir, os.DirFS(dir))
		if err != nil {
			return nil, err
		}
		violations = append(violations, linted...)
	}

	themes := theming.EmbeddedFS()
	themeLabel := "<embedded themes>"
	if themeDir != "" {
		themes, themeLabel = os.DirFS(themeDir), themeDir
	}
	linted, err := lintThemes(themeLabel, themes)
	if err != nil {
		return nil, err
	}
	return append(violations, linted...), nil
}

// lintCatalog reports load errors as a single violation so one bad file does
// not hide the theme results.
func lintCatalog(label string, fsys fs.FS) ([]violation, error) {
	store, err := catalog.LoadFS(fsys, catalog.WithDecorators(catalog.RequireSections()))
	if err != nil {
		return []violation{{file: label, location: "catalog", message: err.Error()}}, nil
	}

	var result []violation
	for _, id := range store.IDs() {
		def, _ := store.Screen(id)
		file := filepath.Join(label, store.Source(id))
		live, err := screen.Build(def)
		if err != nil {
			result = append(result, violation{file: file, location: formatLocation([]string{"screen", id}), message: err.Error()})
			continue
		}
		findings, err := live.Audit()
		if err != nil {
			return nil, fmt.Errorf("audit %s: %w", id, err)
		}
		result = append(result, lintFindings(file, def, findings)...)
	}
	return result, nil
}

func lintFindings(file string, def model.Screen, findings []screen.Finding) []violation {
	flagged := make(map[string]bool)
	var result []violation
	for _, f := range findings {
		flagged[f.Example] = true
		if f.Section == model.SectionGood {
			result = append(result, violation{
				file:     file,
				location: formatLocation([]string{"screen", def.ID, "good", f.Example}),
				message:  f.String(),
			})
		}
	}
	for _, section := range def.Sections {
		if section.Kind != model.SectionBad {
			continue
		}
		for _, example := range section.Examples {
			if example.ID != "" && interactive(example) && !flagged[example.ID] {
				result = append(result, violation{
					file:     file,
					location: formatLocation([]string{"screen", def.ID, "bad", example.ID}),
					message:  "bad example produces no findings",
				})
			}
		}
	}
	return result
}

// interactive reports whether an example holds anything the audit can judge;
// text-only examples describe out-of-scope controls.
func interactive(example model.Example) bool {
	for _, item := range example.Items {
		switch item.Kind() {
		case model.ItemControl, model.ItemGroup, model.ItemAntiPattern:
			return true
		}
	}
	return false
}

func lintThemes(label string, fsys fs.FS) ([]violation, error) {
	manifests, err := theming.LoadFS(fsys)
	if err != nil {
		return []violation{{file: label, location: "themes", message: err.Error()}}, nil
	}
	selector, err := theming.New(manifests)
	if err != nil {
		return []violation{{file: label, location: "themes", message: err.Error()}}, nil
	}
	palettes, err := selector.ContrastAll()
	if err != nil {
		return []violation{{file: label, location: "themes", message: err.Error()}}, nil
	}

	var result []violation
	for key, results := range palettes {
		for _, failure := range contrast.Failures(results) {
			result = append(result, violation{
				file:     label,
				location: formatLocation([]string{"theme", key, failure.Name}),
				message: fmt.Sprintf("%s on %s is %s, needs %s",
					failure.ForegroundColor, failure.BackgroundColor, contrast.Format(failure.Ratio), contrast.Format(failure.Min)),
			})
		}
	}
	return result, nil
}

func report(w io.Writer, violations []violation) {
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
	for _, v := range violations {
		fmt.Fprintf(w, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
