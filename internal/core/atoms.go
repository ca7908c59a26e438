package core

import (
	"strings"

	"github.com/3-lines-studio/midgard/internal/ui"
)

// defaultGlyph stands in for a feature item without an icon.
const defaultGlyph = "✦"

const checkGlyph = "✓"

func section(class string, children ...ui.Node) *ui.Element {
	wrap := ui.El("section").Class(styleSection)
	inner := ui.El("div").Class(styleContainer).Class(class)
	inner.Append(children...)
	return wrap.Append(inner)
}

func cta(c Cta) ui.Node {
	var class string
	switch c.Kind {
	case CtaPrimary:
		class = styleBtnPrimary
	case CtaSecondary:
		class = styleBtnSecondary
	case CtaLink:
		class = styleBtnLink
	default:
		class = styleBtnPrimary
	}
	return ui.El("a", ui.Text(c.Label)).Set("href", c.Href).Class(class)
}

func ctaRow(ctas []Cta, class string) ui.Node {
	if len(ctas) == 0 {
		return nil
	}
	row := ui.El("div").Class(class)
	for _, c := range ctas {
		row.Append(cta(c))
	}
	return row
}

func isOutbound(href string) bool {
	return strings.HasPrefix(href, "http://") ||
		strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "//")
}

// link renders a plain anchor; outbound targets open in a new browsing
// context without a handle back to the opener.
func link(l NavLink, class string) *ui.Element {
	a := ui.El("a", ui.Text(l.Label)).Set("href", l.Href).Class(class)
	if isOutbound(l.Href) {
		a.Set("target", "_blank")
		a.Set("rel", "noopener noreferrer")
	}
	return a
}
