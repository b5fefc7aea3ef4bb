package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

// Option customises loading.
type Option func(*loadConfig)

type loadConfig struct {
	decorators []model.Decorator
}

// WithDecorators runs decorators over the assembled catalog after validation.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(cfg *loadConfig) {
		for _, decorator := range decorators {
			if decorator != nil {
				cfg.decorators = append(cfg.decorators, decorator)
			}
		}
	}
}

type documentFile struct {
	Title   string            `json:"title" yaml:"title"`
	Screens []model.Screen    `json:"screens" yaml:"screens"`
	Meta    map[string]string `json:"metadata" yaml:"metadata"`
}

// LoadFS walks fsys and parses every JSON or YAML file as a list of screens.
// Screen ids must be unique across files. When fsys is nil the store is
// empty.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	cfg := loadConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	catalog := model.Catalog{}
	sources := make(map[string]string)
	if fsys != nil {
		err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() || !isCatalogFile(path) {
				return nil
			}

			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				return fmt.Errorf("catalog: read %s: %w", path, err)
			}
			doc, err := parseDocument(data, path)
			if err != nil {
				return err
			}
			if catalog.Title == "" {
				catalog.Title = strings.TrimSpace(doc.Title)
			}
			for key, value := range doc.Meta {
				if catalog.Meta == nil {
					catalog.Meta = make(map[string]string)
				}
				catalog.Meta[key] = value
			}

			for idx := range doc.Screens {
				screen := doc.Screens[idx]
				screen.ID = strings.TrimSpace(screen.ID)
				if screen.ID == "" {
					return fmt.Errorf("catalog: file %s defines a screen with an empty id (index %d)", path, idx)
				}
				if previous, exists := sources[screen.ID]; exists {
					return fmt.Errorf("catalog: duplicate screen %q (file %s, first defined in %s)", screen.ID, path, previous)
				}
				if err := validateScreen(screen, path); err != nil {
					return err
				}
				sources[screen.ID] = path
				catalog.Screens = append(catalog.Screens, screen)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for _, decorator := range cfg.decorators {
		if err := decorator.Decorate(&catalog); err != nil {
			return nil, fmt.Errorf("catalog: decorate: %w", err)
		}
	}

	sort.SliceStable(catalog.Screens, func(i, j int) bool {
		a, b := catalog.Screens[i], catalog.Screens[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})

	return newStore(catalog, sources), nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
