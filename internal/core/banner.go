package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

// compileBanner is always centered and always gradient-decorated; the
// banner exists to close the page with one strong call to action.
func compileBanner(s CTABanner) ui.Node {
	inner := ui.El("div",
		ui.El("h2", ui.Text(s.Title)).Class(styleBannerTitle),
	).Class(styleBannerInner)

	inner.Append(ctaRow(s.Ctas, styleBannerCtas))

	return section("", inner)
}
