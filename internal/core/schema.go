package core

// Document is the root page value: brand metadata plus an ordered
// section list. It is consumed read-only; compilation never mutates it.
type Document struct {
	Meta     Meta      `json:"meta"`
	Sections []Section `json:"sections"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Meta struct {
	Brand string    `json:"brand"`
	Logo  string    `json:"logo,omitempty"`
	Theme Theme     `json:"theme,omitempty"`
	Nav   []NavLink `json:"nav,omitempty"`
}

type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type CtaKind string

const (
	CtaPrimary   CtaKind = "primary"
	CtaSecondary CtaKind = "secondary"
	CtaLink      CtaKind = "link"
)

type Cta struct {
	Kind  CtaKind `json:"kind"`
	Label string  `json:"label"`
	Href  string  `json:"href"`
}

// Media is the closed image/video/code union embedded in hero sections.
type Media interface {
	media()
}

type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Rounded bool   `json:"rounded,omitempty"`
}

func (Image) media() {}

type Video struct {
	Src      string `json:"src"`
	Poster   string `json:"poster,omitempty"`
	Autoplay bool   `json:"autoplay,omitempty"`
	Loop     bool   `json:"loop,omitempty"`
}

func (Video) media() {}

type Code struct {
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

func (Code) media() {}

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

type Decor string

const (
	DecorNone     Decor = "none"
	DecorGradient Decor = "gradient"
	DecorMesh     Decor = "mesh"
)

// Section is the closed 8-variant union of page blocks. Adding a ninth
// variant means touching the dispatcher; there is no runtime registration.
// Unknown carries unrecognized tags decoded from external documents and is
// the dispatcher's skip arm, not a renderable variant.
type Section interface {
	// Anchor is the fragment identifier for in-page navigation, or "".
	Anchor() string
	section()
}

type Hero struct {
	ID      string   `json:"id,omitempty"`
	Title   string   `json:"title"`
	Align   Align    `json:"align,omitempty"`
	Decor   Decor    `json:"decor,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
	Ctas    []Cta    `json:"ctas,omitempty"`
	Media   Media    `json:"-"`
}

func (s Hero) Anchor() string { return s.ID }
func (Hero) section()         {}

type Feature struct {
	Icon  string `json:"icon,omitempty"`
	Title string `json:"title"`
	Desc  string `json:"desc,omitempty"`
}

type Features struct {
	ID      string    `json:"id,omitempty"`
	Columns int       `json:"columns,omitempty"`
	Items   []Feature `json:"items"`
}

func (s Features) Anchor() string { return s.ID }
func (Features) section()         {}

type Testimonial struct {
	Quote       string `json:"quote"`
	Author      string `json:"author"`
	Role        string `json:"role,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	CompanyLogo string `json:"companyLogo,omitempty"`
}

type Testimonials struct {
	ID    string        `json:"id,omitempty"`
	Items []Testimonial `json:"items"`
}

func (s Testimonials) Anchor() string { return s.ID }
func (Testimonials) section()         {}

type Tier struct {
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Highlight bool     `json:"highlight,omitempty"`
	Features  []string `json:"features,omitempty"`
	Cta       *Cta     `json:"cta,omitempty"`
}

type Pricing struct {
	ID    string `json:"id,omitempty"`
	Tiers []Tier `json:"tiers"`
}

func (s Pricing) Anchor() string { return s.ID }
func (Pricing) section()         {}

type QA struct {
	Question string `json:"q"`
	// Answer accepts Markdown.
	Answer string `json:"a"`
}

type FAQ struct {
	ID    string `json:"id,omitempty"`
	Items []QA   `json:"items"`
}

func (s FAQ) Anchor() string { return s.ID }
func (FAQ) section()         {}

type Logo struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type Logos struct {
	ID    string `json:"id,omitempty"`
	Items []Logo `json:"items"`
}

func (s Logos) Anchor() string { return s.ID }
func (Logos) section()         {}

type CTABanner struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Ctas  []Cta  `json:"ctas"`
}

func (s CTABanner) Anchor() string { return s.ID }
func (CTABanner) section()         {}

type FooterColumn struct {
	Heading string    `json:"heading,omitempty"`
	Links   []NavLink `json:"links"`
}

type Footer struct {
	ID      string         `json:"id,omitempty"`
	Columns []FooterColumn `json:"columns"`
}

func (s Footer) Anchor() string { return s.ID }
func (Footer) section()         {}

// Unknown preserves a section whose type tag the schema does not
// recognize. The dispatcher renders nothing for it.
type Unknown struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

func (s Unknown) Anchor() string { return s.ID }
func (Unknown) section()         {}
