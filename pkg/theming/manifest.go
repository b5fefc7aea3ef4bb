package theming

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

//go:embed themes/*.yaml
var embeddedThemes embed.FS

// EmbeddedFS exposes the bundled theme manifests.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedThemes, "themes")
	if err != nil {
		panic(err)
	}
	return sub
}

type manifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Tokens    map[string]string      `yaml:"tokens"`
	Templates map[string]string      `yaml:"templates"`
	Assets    assetsFile             `yaml:"assets"`
	Variants  map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsFile        `yaml:"assets"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

func (a assetsFile) toTheme() theme.Assets {
	return theme.Assets{Prefix: a.Prefix, Files: a.Files}
}

func (m manifestFile) toTheme() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:      strings.TrimSpace(m.Name),
		Version:   m.Version,
		Tokens:    m.Tokens,
		Templates: m.Templates,
		Assets:    m.Assets.toTheme(),
	}
	if len(m.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(m.Variants))
		for name, variant := range m.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    variant.Assets.toTheme(),
			}
		}
	}
	return manifest
}

// LoadFS parses every .yaml or .yml manifest in fsys, sorted by name.
func LoadFS(fsys fs.FS) ([]*theme.Manifest, error) {
	var manifests []*theme.Manifest
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".yaml", ".yml":
		default:
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("theming: read %s: %w", p, err)
		}
		var file manifestFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("theming: parse %s: %w", p, err)
		}
		manifest := file.toTheme()
		if manifest.Name == "" {
			return fmt.Errorf("theming: file %s: theme name is required", p)
		}
		if prev, dup := seen[manifest.Name]; dup {
			return fmt.Errorf("theming: theme %q declared in %s and %s", manifest.Name, prev, p)
		}
		seen[manifest.Name] = p
		manifests = append(manifests, manifest)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(manifests, func(i, j int) bool { return manifests[i].Name < manifests[j].Name })
	return manifests, nil
}
