package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

// Fragment is the compiled output of one section, tagged with its anchor
// for in-page navigation. Whether any nav href actually targets an
// existing anchor is not checked here.
type Fragment struct {
	Anchor string
	Root   ui.Node
}

type Page struct {
	Brand     string
	Theme     Theme
	Fragments []Fragment
}

// Compile validates the document, then maps each section through the
// dispatcher in input order. Section order is preserved exactly; unknown
// sections are dropped, nothing is reordered or merged.
func Compile(doc Document) (*Page, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	ctx := ResolveContext(doc.Meta)

	page := &Page{
		Brand:     doc.Meta.Brand,
		Theme:     doc.Meta.Theme,
		Fragments: make([]Fragment, 0, len(doc.Sections)),
	}

	for _, s := range doc.Sections {
		root := Dispatch(s, ctx)
		if root == nil {
			continue
		}
		if el, ok := root.(*ui.Element); ok && s.Anchor() != "" {
			el.Set("id", s.Anchor())
		}
		page.Fragments = append(page.Fragments, Fragment{Anchor: s.Anchor(), Root: root})
	}

	return page, nil
}

// BodyHTML renders the fragments into the page-level container.
func (p *Page) BodyHTML() string {
	main := ui.El("main").Class(stylePage)
	for _, f := range p.Fragments {
		main.Append(f.Root)
	}
	return ui.Render(main)
}
