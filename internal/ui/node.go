package ui

// Node is a piece of the compiled UI-tree. The tree is description only:
// rendering hosts mount it, this package just builds and serializes it.
type Node interface {
	node()
}

// Text is escaped on render.
type Text string

func (Text) node() {}

// Raw is written verbatim on render. Only hand it pre-sanitized markup.
type Raw string

func (Raw) node() {}

type Attr struct {
	Key string
	Val string
}

type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

func (*Element) node() {}

func El(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

func (e *Element) Set(key, val string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Val = val
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Val: val})
	return e
}

// Flag sets a boolean attribute (rendered without a value).
func (e *Element) Flag(key string) *Element {
	return e.Set(key, "")
}

func (e *Element) Class(tokens string) *Element {
	if tokens == "" {
		return e
	}
	for i := range e.Attrs {
		if e.Attrs[i].Key == "class" {
			if e.Attrs[i].Val == "" {
				e.Attrs[i].Val = tokens
			} else {
				e.Attrs[i].Val += " " + tokens
			}
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: "class", Val: tokens})
	return e
}

func (e *Element) Append(children ...Node) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
