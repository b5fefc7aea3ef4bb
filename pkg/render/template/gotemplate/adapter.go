package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-a11ycatalog/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	extension string
	setName   string
	globals   map[string]any
	helpers   map[string]any
}

// WithFS loads templates from an fs.FS, typically an embed.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the ".tpl" extension appended to template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// WithSetName names the pongo2 template set, which shows up in errors.
func WithSetName(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.setName = name
		}
	}
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		cfg.globals = mergeInto(cfg.globals, data)
	}
}

// WithTemplateFunc registers template helpers. Values shaped like a pongo2
// filter or a template.FilterFunc become filters; any other function is
// callable from templates by name, e.g. {{ translate(page.lang, "page.skip") }}.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		cfg.helpers = mergeInto(cfg.helpers, funcs)
	}
}

func mergeInto(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		if key = strings.TrimSpace(key); key != "" {
			dst[key] = value
		}
	}
	return dst
}

// Engine implements template.TemplateRenderer on a pongo2 template set.
// The aria filters are always available; compiled templates are cached by
// path.
type Engine struct {
	mu sync.RWMutex

	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
	ext   string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine over the templates given WithFS.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension: ".tpl",
		setName:   "a11ycatalog",
	}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.templates == nil {
		return nil, errors.New("gotemplate: templates fs.FS is required")
	}

	engine := &Engine{
		set:   pongo2.NewSet(cfg.setName, pongo2.NewFSLoader(cfg.templates)),
		cache: make(map[string]*pongo2.Template),
		ext:   cfg.extension,
	}

	helpers := make(map[string]any, len(cfg.helpers)+3)
	for name, filter := range ariaFilters() {
		helpers[name] = filter
	}
	for name, fn := range cfg.helpers {
		helpers[name] = fn
	}
	callables := make(map[string]any)
	for name, fn := range helpers {
		filter, ok := asFilter(name, fn)
		if !ok {
			callables[name] = fn
			continue
		}
		// pongo2 filters are process wide; the first registration wins.
		if !pongo2.FilterExists(name) {
			if err := pongo2.RegisterFilter(name, filter); err != nil {
				return nil, fmt.Errorf("gotemplate: register filter %q: %w", name, err)
			}
		}
	}

	if err := engine.GlobalContext(cfg.globals); err != nil {
		return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
	}
	if err := engine.GlobalContext(callables); err != nil {
		return nil, fmt.Errorf("gotemplate: apply template funcs: %w", err)
	}
	return engine, nil
}

// asFilter reports whether fn has one of the filter shapes.
func asFilter(name string, fn any) (pongo2.FilterFunction, bool) {
	switch f := fn.(type) {
	case pongo2.FilterFunction:
		return f, true
	case func(*pongo2.Value, *pongo2.Value) (*pongo2.Value, *pongo2.Error):
		return f, true
	case template.FilterFunc:
		return wrapFilter(name, f), true
	case func(any, any) (any, error):
		return wrapFilter(name, f), true
	}
	return nil, false
}

func wrapFilter(name string, fn template.FilterFunc) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
}

// RenderTemplate executes a named template, appending the extension when
// missing.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, fmt.Sprintf("template %q", name), data, out)
}

// RenderString compiles and executes inline template source.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	tmpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return e.execute(tmpl, "template string", data, out)
}

// RegisterFilter adds a process-wide pongo2 filter. Existing names are
// rejected.
func (e *Engine) RegisterFilter(name string, fn template.FilterFunc) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, wrapFilter(name, fn))
}

// GlobalContext merges data into the template set globals.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if data == nil {
		return nil
	}
	globals, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals.Update(globals)
	return nil
}

func (e *Engine) execute(tmpl *pongo2.Template, label string, data any, out []io.Writer) (string, error) {
	view, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(view, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", label, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

// toContext hands everything except top-level functions to go-template's
// JSON conversion, so templates address struct fields by their json tags.
// Functions are kept as is so templates can call them.
func toContext(data any) (pongo2.Context, error) {
	var fields map[string]any
	switch v := data.(type) {
	case pongo2.Context:
		fields = v
	case map[string]any:
		fields = v
	default:
		return gotemplatepkg.ConvertToContext(data)
	}

	plain := make(map[string]any, len(fields))
	funcs := make(map[string]any)
	for key, value := range fields {
		key = strings.TrimSpace(key)
		switch {
		case key == "":
		case isFunc(value):
			funcs[key] = value
		default:
			plain[key] = value
		}
	}
	view, err := gotemplatepkg.ConvertToContext(plain)
	if err != nil {
		return nil, err
	}
	for key, fn := range funcs {
		view[key] = fn
	}
	return view, nil
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
