package core

// PageContext carries brand chrome into the one section that renders it.
// Only the hero compiler receives it; brand identity and navigation are
// rendered once, never duplicated per section.
type PageContext struct {
	Brand string
	Logo  string
	Nav   []NavLink
}

func ResolveContext(meta Meta) PageContext {
	return PageContext{
		Brand: meta.Brand,
		Logo:  meta.Logo,
		Nav:   meta.Nav,
	}
}
