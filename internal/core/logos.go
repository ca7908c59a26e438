package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

// compileLogos renders every item; density is the caller's problem, the
// grid simply wraps.
func compileLogos(s Logos) ui.Node {
	grid := ui.El("div").Class(styleLogoGrid)
	for _, l := range s.Items {
		img := ui.El("img").Set("src", l.Src).Class(styleLogoItem)
		if l.Alt != "" {
			img.Set("alt", l.Alt)
		}
		grid.Append(img)
	}
	return section("", grid)
}
