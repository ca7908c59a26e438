package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

func compileFooter(s Footer) ui.Node {
	grid := ui.El("div").Class(styleFooterGrid)
	for _, col := range s.Columns {
		c := ui.El("div")
		if col.Heading != "" {
			c.Append(ui.El("h4", ui.Text(col.Heading)).Class(styleFooterHeading))
		}
		links := ui.El("ul").Class(styleFooterLinks)
		for _, l := range col.Links {
			links.Append(ui.El("li", link(l, styleFooterLink)))
		}
		c.Append(links)
		grid.Append(c)
	}

	wrap := ui.El("footer").Class(styleFooter)
	return wrap.Append(ui.El("div").Class(styleContainer).Append(grid))
}
