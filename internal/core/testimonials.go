package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

// compileTestimonials lays items out on a fixed two-column grid whatever
// the item count.
func compileTestimonials(s Testimonials) ui.Node {
	grid := ui.El("div").Class(styleQuoteGrid)
	for _, item := range s.Items {
		grid.Append(testimonialCard(item))
	}
	return section("", grid)
}

func testimonialCard(t Testimonial) ui.Node {
	card := ui.El("figure",
		ui.El("blockquote", ui.Text(t.Quote)).Class(styleQuoteText),
	).Class(styleQuoteCard)

	foot := ui.El("figcaption").Class(styleQuoteFooter)
	if t.Avatar != "" {
		foot.Append(ui.El("img").Set("src", t.Avatar).Set("alt", t.Author).Class(styleQuoteAvatar))
	} else {
		foot.Append(ui.El("div", ui.Text(authorInitial(t.Author))).Class(styleQuoteGlyph))
	}

	who := ui.El("div", ui.El("div", ui.Text(t.Author)).Class(styleQuoteAuthor))
	if t.Role != "" {
		who.Append(ui.El("div", ui.Text(t.Role)).Class(styleQuoteRole))
	}
	foot.Append(who)

	if t.CompanyLogo != "" {
		foot.Append(ui.El("img").Set("src", t.CompanyLogo).Set("alt", "").Class(styleQuoteLogo))
	}

	return card.Append(foot)
}

func authorInitial(author string) string {
	for _, r := range author {
		return string(r)
	}
	return "?"
}
