package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

// Transformer mutates a screen definition before its components are built.
// Implementations can retitle examples, translate copy or inject metadata.
type Transformer interface {
	Transform(ctx context.Context, def *model.Screen) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, def *model.Screen) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, def *model.Screen) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, def)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, def *model.Screen) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, def); err != nil {
				return err
			}
		}
		return nil
	})
}

// JSONPresetTransformer applies declarative copy overrides loaded from a JSON
// file. Patches are keyed by screen id, then example id:
//
//	{
//	  "screens": {
//	    "checkboxes": {
//	      "title": "Casillas",
//	      "metadata": {"reviewed": "2024-05"},
//	      "examples": {
//	        "good-single-checkbox": {"title": "Buen ejemplo", "details": {"hint": "Buen ejemplo"}}
//	      }
//	    }
//	  }
//	}
//
// Screens without a patch pass through untouched; a patch naming an unknown
// example is an error.
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Screens map[string]jsonScreenPatch `json:"screens"`
}

type jsonScreenPatch struct {
	Title    string                      `json:"title"`
	Intro    string                      `json:"intro"`
	Metadata map[string]string           `json:"metadata"`
	Sections map[string]string           `json:"sections"`
	Examples map[string]jsonExamplePatch `json:"examples"`
}

type jsonExamplePatch struct {
	Title   string            `json:"title"`
	Details *jsonDetailsPatch `json:"details"`
}

type jsonDetailsPatch struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Hint  string `json:"hint"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied definition.
func (t *JSONPresetTransformer) Transform(ctx context.Context, def *model.Screen) error {
	if def == nil {
		return errors.New("json preset transformer: screen is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	patch, ok := t.document.Screens[def.ID]
	if !ok {
		return nil
	}

	if patch.Title != "" {
		def.Title = patch.Title
	}
	if patch.Intro != "" {
		def.Intro = patch.Intro
	}
	if len(patch.Metadata) > 0 {
		def.Meta = mergeStringMap(def.Meta, patch.Metadata)
	}
	for idx := range def.Sections {
		if title := patch.Sections[string(def.Sections[idx].Kind)]; title != "" {
			def.Sections[idx].Title = title
		}
	}

	for id, examplePatch := range patch.Examples {
		if err := ctx.Err(); err != nil {
			return err
		}
		example := findExample(def, id)
		if example == nil {
			return fmt.Errorf("json preset transformer: example %q not found in screen %q", id, def.ID)
		}
		applyExamplePatch(example, examplePatch)
	}
	return nil
}

func applyExamplePatch(example *model.Example, patch jsonExamplePatch) {
	if patch.Title != "" {
		example.Title = patch.Title
	}
	if patch.Details == nil {
		return
	}
	if example.Details == nil {
		example.Details = &model.Details{}
	}
	if patch.Details.Title != "" {
		example.Details.Title = patch.Details.Title
	}
	if patch.Details.Text != "" {
		example.Details.Text = patch.Details.Text
	}
	if patch.Details.Hint != "" {
		example.Details.Hint = patch.Details.Hint
	}
}

func findExample(def *model.Screen, id string) *model.Example {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	for sIdx := range def.Sections {
		examples := def.Sections[sIdx].Examples
		for eIdx := range examples {
			if examples[eIdx].ID == id {
				return &examples[eIdx]
			}
		}
	}
	return nil
}

// cloneScreen deep copies a definition so transformers never touch the
// catalog's copy.
func cloneScreen(def model.Screen) (model.Screen, error) {
	data, err := json.Marshal(def)
	if err != nil {
		return model.Screen{}, err
	}
	var out model.Screen
	if err := json.Unmarshal(data, &out); err != nil {
		return model.Screen{}, err
	}
	return out, nil
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
