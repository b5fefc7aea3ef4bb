// Package markup turns catalog prose into safe inline HTML. Explanations may
// use Markdown emphasis, inline code and links; anything else is stripped.
package markup

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// Renderer converts Markdown prose to sanitised HTML.
type Renderer struct {
	policy *bluemonday.Policy
	block  bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBlocks keeps paragraph and list elements instead of flattening the
// output to a single inline run.
func WithBlocks() Option {
	return func(r *Renderer) {
		r.block = true
	}
}

// WithPolicy replaces the sanitising policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// New builds a renderer with the default inline policy.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.policy == nil {
		r.policy = Policy(r.block)
	}
	return r
}

// Policy returns the allow-list used for catalog prose. Links are forced to
// open safely and may only use http, https or mailto.
func Policy(blocks bool) *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AllowElements("em", "strong", "code", "br")
	if blocks {
		p.AllowElements("p", "ul", "ol", "li")
	}
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// HTML renders text and returns trusted markup for templates.
func (r *Renderer) HTML(text string) template.HTML {
	return template.HTML(r.String(text))
}

// String renders text to a sanitised HTML string.
func (r *Renderer) String(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions &^ parser.MathJax)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	out := string(markdown.ToHTML([]byte(text), p, renderer))
	if !r.block {
		out = flatten(out)
	}
	return strings.TrimSpace(r.policy.Sanitize(out))
}

// Plain strips all markup and returns the text content, for terminals and
// accessibility labels.
func (r *Renderer) Plain(text string) string {
	sanitized := bluemonday.StrictPolicy().Sanitize(r.String(text))
	return strings.Join(strings.Fields(unescape(sanitized)), " ")
}

// flatten joins paragraphs with line breaks so the result fits inside a
// single element such as a <p> or <span>.
func flatten(out string) string {
	out = strings.TrimSpace(out)
	out = strings.ReplaceAll(out, "</p>\n\n<p>", "<br>")
	out = strings.ReplaceAll(out, "</p>\n<p>", "<br>")
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return out
}

var entities = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'", "&quot;", `"`)

func unescape(s string) string {
	return entities.Replace(s)
}
