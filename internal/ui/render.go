package ui

import (
	"html"
	"strings"
)

var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func Render(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case nil:
	case Text:
		b.WriteString(html.EscapeString(string(v)))
	case Raw:
		b.WriteString(string(v))
	case *Element:
		if v == nil {
			return
		}
		b.WriteString("<")
		b.WriteString(v.Tag)
		for _, a := range v.Attrs {
			b.WriteString(" ")
			b.WriteString(a.Key)
			if a.Val != "" {
				b.WriteString("=\"")
				b.WriteString(html.EscapeString(a.Val))
				b.WriteString("\"")
			}
		}
		if voidElements[v.Tag] {
			b.WriteString(" />")
			return
		}
		b.WriteString(">")
		for _, c := range v.Children {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(v.Tag)
		b.WriteString(">")
	}
}
