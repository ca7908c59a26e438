package core

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/3-lines-studio/midgard/internal/ui"
)

var markdown = goldmark.New()

// compileFAQ renders each item as its own disclosure. Items expand and
// collapse independently; there is no accordion-style exclusivity, so the
// disclosures are deliberately not grouped under a shared name.
func compileFAQ(s FAQ) ui.Node {
	list := ui.El("div").Class(styleFaqList)
	for _, item := range s.Items {
		list.Append(ui.El("details",
			ui.El("summary", ui.Text(item.Question)).Class(styleFaqSummary),
			ui.El("div", markdownNode(item.Answer)).Class(styleFaqAnswer),
		).Class(styleFaqItem))
	}
	return section("", list)
}

// markdownNode converts Markdown answer text to markup. goldmark escapes
// raw HTML by default, so authored answers cannot inject elements.
func markdownNode(src string) ui.Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return ui.Text(src)
	}
	return ui.Raw(buf.String())
}
