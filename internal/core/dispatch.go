package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

// Dispatch maps a section to its compiler on the type discriminant alone.
// The union is closed: every renderable variant has exactly one arm here.
// Anything else (Unknown, or a tag added without a compiler) yields nil so
// one bad section never takes down the page.
func Dispatch(s Section, ctx PageContext) ui.Node {
	switch v := s.(type) {
	case Hero:
		return compileHero(v, ctx)
	case Features:
		return compileFeatures(v)
	case Testimonials:
		return compileTestimonials(v)
	case Pricing:
		return compilePricing(v)
	case FAQ:
		return compileFAQ(v)
	case Logos:
		return compileLogos(v)
	case CTABanner:
		return compileBanner(v)
	case Footer:
		return compileFooter(v)
	default:
		return nil
	}
}
