package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

func compileFeatures(s Features) ui.Node {
	gridClass, ok := featureGrid[s.Columns]
	if !ok {
		gridClass = featureGrid[3]
	}

	grid := ui.El("div").Class(gridClass)
	for _, item := range s.Items {
		icon := item.Icon
		if icon == "" {
			icon = defaultGlyph
		}
		card := ui.El("div",
			ui.El("div", ui.Text(icon)).Class(styleFeatureIcon),
			ui.El("h3", ui.Text(item.Title)).Class(styleFeatureTitle),
		).Class(styleFeatureCard)
		if item.Desc != "" {
			card.Append(ui.El("p", ui.Text(item.Desc)).Class(styleFeatureDesc))
		}
		grid.Append(card)
	}

	return section("", grid)
}
