package elementsearch

import "net/http"

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

type GuardFunc func(r *http.Request) error

// HrefFunc builds the link returned for an entry.
type HrefFunc func(Entry) string

type Options struct {
	RoutePath       string
	SearchParam     string
	LimitParam      string
	ScreenParam     string
	DefaultLimit    int
	MaxLimit        int
	MaxDistance     int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc
	Href            HrefFunc

	Entries []Entry
}

type OptionFn func(*Options)

const (
	defaultRoutePath   = "/api/elements"
	defaultLimit       = 20
	defaultMaxLimit    = 100
	defaultMaxDistance = 2
)

func DefaultOptions() Options {
	return Options{
		RoutePath:       defaultRoutePath,
		SearchParam:     "q",
		LimitParam:      "limit",
		ScreenParam:     "screen",
		DefaultLimit:    defaultLimit,
		MaxLimit:        defaultMaxLimit,
		MaxDistance:     defaultMaxDistance,
		EmptySearchMode: EmptySearchNone,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = defaultMaxLimit
	}
	if opts.MaxDistance < 0 {
		opts.MaxDistance = 0
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchNone
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.ScreenParam == "" {
		opts.ScreenParam = "screen"
	}
	if opts.Entries != nil {
		opts.Entries = append([]Entry{}, opts.Entries...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithScreenParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ScreenParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

// WithMaxDistance bounds the edit distance accepted by the fuzzy fallback.
// Zero disables it.
func WithMaxDistance(distance int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxDistance = distance
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithHref(fn HrefFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Href = fn
	}
}

func WithEntries(entries []Entry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if entries == nil {
			o.Entries = nil
			return
		}
		o.Entries = append([]Entry{}, entries...)
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
