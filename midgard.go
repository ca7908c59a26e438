// Package midgard compiles a typed landing-page document into a
// renderable HTML UI-tree. Authors describe a page as data (brand
// metadata plus an ordered list of typed sections); Compile validates the
// document and maps every section through its rendering rule.
package midgard

import (
	"net/http"
	"os"

	"github.com/3-lines-studio/midgard/internal/core"
	"github.com/3-lines-studio/midgard/internal/docfmt"
	"github.com/3-lines-studio/midgard/internal/runtime"
)

type (
	Document = core.Document
	Meta     = core.Meta
	NavLink  = core.NavLink
	Theme    = core.Theme

	Cta     = core.Cta
	CtaKind = core.CtaKind

	Media = core.Media
	Image = core.Image
	Video = core.Video
	Code  = core.Code

	Align = core.Align
	Decor = core.Decor

	Section      = core.Section
	Hero         = core.Hero
	Feature      = core.Feature
	Features     = core.Features
	Testimonial  = core.Testimonial
	Testimonials = core.Testimonials
	Tier         = core.Tier
	Pricing      = core.Pricing
	QA           = core.QA
	FAQ          = core.FAQ
	Logo         = core.Logo
	Logos        = core.Logos
	CTABanner    = core.CTABanner
	FooterColumn = core.FooterColumn
	Footer       = core.Footer
	Unknown      = core.Unknown

	Page            = core.Page
	Fragment        = core.Fragment
	SchemaViolation = core.SchemaViolation
)

const (
	CtaPrimary   = core.CtaPrimary
	CtaSecondary = core.CtaSecondary
	CtaLink      = core.CtaLink

	AlignLeft   = core.AlignLeft
	AlignCenter = core.AlignCenter

	DecorNone     = core.DecorNone
	DecorGradient = core.DecorGradient
	DecorMesh     = core.DecorMesh

	ThemeLight = core.ThemeLight
	ThemeDark  = core.ThemeDark
)

// Compile turns a document into an ordered list of rendered fragments.
// It fails only on the validator's two checks; everything past the gate
// degrades per section instead.
func Compile(doc Document) (*Page, error) {
	return core.Compile(doc)
}

func Validate(doc Document) error {
	return core.Validate(doc)
}

// Load decodes a JSON page document.
func Load(data []byte) (Document, error) {
	return docfmt.DecodeJSON(data)
}

// LoadFile decodes a page document from disk, picking JSON or YAML by
// file extension.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return docfmt.Decode(data, path)
}

// RenderDocument wraps a compiled page in a standalone HTML document.
func RenderDocument(p *Page, cssHref string) string {
	return core.RenderHTMLDocument(p, cssHref)
}

type App struct {
	page    *Page
	err     error
	isDev   bool
	cssHref string
}

type Option func(*App)

// WithStylesheet links the styling layer's compiled stylesheet into the
// served document.
func WithStylesheet(href string) Option {
	return func(a *App) {
		a.cssHref = href
	}
}

// New compiles the document once up front. A compile failure is held and
// surfaced by Handler as an error page rather than panicking the host.
func New(doc Document, opts ...Option) *App {
	app := &App{
		isDev: runtime.IsDev(),
	}
	for _, opt := range opts {
		opt(app)
	}
	app.page, app.err = core.Compile(doc)
	return app
}

func (a *App) Page() (*Page, error) {
	return a.page, a.err
}

// Handler serves the compiled page as a full HTML document.
func (a *App) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if a.err != nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_ = core.ErrorTemplate.Execute(w, core.ErrorData{
				Message: a.err.Error(),
				IsDev:   a.isDev,
			})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(core.RenderHTMLDocument(a.page, a.cssHref)))
	})
}
