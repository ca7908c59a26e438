package core

import (
	"fmt"
	"html"
	"strings"
)

// RenderHTMLDocument wraps a compiled page in a full standalone HTML
// document. The stylesheet href is optional; the style tokens on the
// fragments stay opaque either way.
func RenderHTMLDocument(p *Page, cssHref string) string {
	head := `<meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" />`
	head += fmt.Sprintf("<title>%s</title>", html.EscapeString(p.Brand))
	if cssHref != "" {
		head += fmt.Sprintf(`<link rel="stylesheet" href="%s" />`, html.EscapeString(cssHref))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<!doctype html>
<html lang="en">
  <head>
    %s
  </head>
  <body>
%s
  </body>
</html>
`, head, p.BodyHTML())

	return b.String()
}
