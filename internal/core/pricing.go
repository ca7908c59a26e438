package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

// compilePricing lays tiers out on a fixed three-column grid. Highlighted
// tiers get emphasized card treatment only; behavior is identical.
func compilePricing(s Pricing) ui.Node {
	grid := ui.El("div").Class(stylePricingGrid)
	for _, tier := range s.Tiers {
		grid.Append(tierCard(tier))
	}
	return section("", grid)
}

func tierCard(t Tier) ui.Node {
	class := styleTierCard
	if t.Highlight {
		class = styleTierHighlight
	}

	card := ui.El("div",
		ui.El("h3", ui.Text(t.Name)).Class(styleTierName),
		ui.El("div", ui.Text(t.Price)).Class(styleTierPrice),
	).Class(class)

	if len(t.Features) > 0 {
		list := ui.El("ul").Class(styleTierFeatures)
		for _, f := range t.Features {
			list.Append(ui.El("li",
				ui.El("span", ui.Text(checkGlyph)),
				ui.El("span", ui.Text(f)),
			).Class(styleTierFeature))
		}
		card.Append(list)
	}

	if t.Cta != nil {
		card.Append(ui.El("div", cta(*t.Cta)).Class(styleTierCta))
	}

	return card
}
