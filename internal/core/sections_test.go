package core

import (
	"strings"
	"testing"

	"github.com/3-lines-studio/midgard/internal/ui"
)

func TestFeaturesColumns(t *testing.T) {
	item := Feature{Title: "Fast"}

	def := ui.Render(compileFeatures(Features{Items: []Feature{item}}))
	if !strings.Contains(def, featureGrid[3]) {
		t.Error("Expected three-column grid by default")
	}

	two := ui.Render(compileFeatures(Features{Columns: 2, Items: []Feature{item}}))
	if !strings.Contains(two, featureGrid[2]) {
		t.Error("Expected two-column grid")
	}

	four := ui.Render(compileFeatures(Features{Columns: 4, Items: []Feature{item}}))
	if !strings.Contains(four, featureGrid[4]) {
		t.Error("Expected four-column grid")
	}

	bogus := ui.Render(compileFeatures(Features{Columns: 7, Items: []Feature{item}}))
	if !strings.Contains(bogus, featureGrid[3]) {
		t.Error("Expected fallback to three-column grid")
	}
}

func TestFeaturesIconFallback(t *testing.T) {
	got := ui.Render(compileFeatures(Features{Items: []Feature{
		{Icon: "🚀", Title: "Fast"},
		{Title: "Plain", Desc: "No icon here"},
	}}))

	if !strings.Contains(got, "🚀") {
		t.Error("Expected declared icon")
	}
	if !strings.Contains(got, defaultGlyph) {
		t.Error("Expected fallback glyph for missing icon")
	}
	if !strings.Contains(got, "No icon here") {
		t.Error("Expected description")
	}
}

func TestFeaturesOmitsEmptyDescription(t *testing.T) {
	got := ui.Render(compileFeatures(Features{Items: []Feature{{Title: "Fast"}}}))

	if strings.Contains(got, styleFeatureDesc) {
		t.Errorf("Expected no description paragraph, got %q", got)
	}
}

func TestTestimonialsFixedGrid(t *testing.T) {
	one := ui.Render(compileTestimonials(Testimonials{Items: []Testimonial{
		{Quote: "Great", Author: "Ada"},
	}}))
	five := ui.Render(compileTestimonials(Testimonials{Items: []Testimonial{
		{Quote: "a", Author: "A"}, {Quote: "b", Author: "B"}, {Quote: "c", Author: "C"},
		{Quote: "d", Author: "D"}, {Quote: "e", Author: "E"},
	}}))

	for _, got := range []string{one, five} {
		if !strings.Contains(got, styleQuoteGrid) {
			t.Error("Expected fixed two-column grid regardless of item count")
		}
	}
}

func TestTestimonialAvatarPlaceholder(t *testing.T) {
	withAvatar := ui.Render(compileTestimonials(Testimonials{Items: []Testimonial{
		{Quote: "Great", Author: "Ada", Avatar: "/ada.png", Role: "CTO"},
	}}))
	if !strings.Contains(withAvatar, `src="/ada.png"`) {
		t.Error("Expected avatar image")
	}
	if !strings.Contains(withAvatar, "CTO") {
		t.Error("Expected role")
	}

	placeholder := ui.Render(compileTestimonials(Testimonials{Items: []Testimonial{
		{Quote: "Great", Author: "Ada"},
	}}))
	if strings.Contains(placeholder, "<img") {
		t.Error("Expected no image without avatar or company logo")
	}
	if !strings.Contains(placeholder, styleQuoteGlyph) {
		t.Error("Expected avatar placeholder")
	}
}

func TestTestimonialCompanyLogo(t *testing.T) {
	got := ui.Render(compileTestimonials(Testimonials{Items: []Testimonial{
		{Quote: "Great", Author: "Ada", CompanyLogo: "/corp.svg"},
	}}))

	if !strings.Contains(got, `src="/corp.svg"`) {
		t.Error("Expected company logo")
	}
	if !strings.Contains(got, styleQuoteLogo) {
		t.Error("Expected right-aligned logo treatment")
	}
}

func TestPricingFixedGridAndEmptyTiers(t *testing.T) {
	empty := ui.Render(compilePricing(Pricing{Tiers: []Tier{}}))

	if !strings.Contains(empty, stylePricingGrid) {
		t.Error("Expected three-column grid even with zero tiers")
	}
	if strings.Contains(empty, styleTierCard) {
		t.Error("Expected zero tier cards")
	}
}

func TestPricingHighlight(t *testing.T) {
	got := ui.Render(compilePricing(Pricing{Tiers: []Tier{
		{Name: "Free", Price: "$0"},
		{Name: "Pro", Price: "$9", Highlight: true},
	}}))

	if !strings.Contains(got, styleTierHighlight) {
		t.Error("Expected highlighted tier treatment")
	}
	if !strings.Contains(got, styleTierCard) {
		t.Error("Expected plain tier treatment")
	}
}

func TestPricingTierFeaturesAndCta(t *testing.T) {
	got := ui.Render(compilePricing(Pricing{Tiers: []Tier{
		{
			Name:     "Pro",
			Price:    "$9",
			Features: []string{"One", "Two"},
			Cta:      &Cta{Kind: CtaPrimary, Label: "Buy", Href: "/buy"},
		},
		{Name: "Free", Price: "$0"},
	}}))

	if strings.Index(got, "One") > strings.Index(got, "Two") {
		t.Error("Expected checklist in document order")
	}
	if !strings.Contains(got, checkGlyph) {
		t.Error("Expected checklist glyphs")
	}
	if !strings.Contains(got, `href="/buy"`) {
		t.Error("Expected tier CTA")
	}
	if strings.Count(got, styleTierCta) != 1 {
		t.Error("Expected CTA only on the tier that declares one")
	}
}

func TestFAQIndependentDisclosures(t *testing.T) {
	got := ui.Render(compileFAQ(FAQ{Items: []QA{
		{Question: "First?", Answer: "Yes."},
		{Question: "Second?", Answer: "Also yes."},
	}}))

	if strings.Count(got, "<details") != 2 {
		t.Errorf("Expected one disclosure per item, got %q", got)
	}
	// A shared name attribute would make the disclosures mutually
	// exclusive; items must stay independently collapsible.
	if strings.Contains(got, "name=") {
		t.Errorf("Expected ungrouped disclosures, got %q", got)
	}
}

func TestFAQAnswerMarkdown(t *testing.T) {
	got := ui.Render(compileFAQ(FAQ{Items: []QA{
		{Question: "Style?", Answer: "Use **bold** text."},
	}}))

	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("Expected Markdown emphasis rendered, got %q", got)
	}
}

func TestFAQAnswerMarkdownEscapesHTML(t *testing.T) {
	got := ui.Render(compileFAQ(FAQ{Items: []QA{
		{Question: "Inject?", Answer: "<script>alert(1)</script>"},
	}}))

	if strings.Contains(got, "<script>") {
		t.Errorf("Expected raw HTML suppressed, got %q", got)
	}
}

func TestLogosUnbounded(t *testing.T) {
	items := make([]Logo, 24)
	for i := range items {
		items[i] = Logo{Src: "/l.svg", Alt: "logo"}
	}

	got := ui.Render(compileLogos(Logos{Items: items}))

	if strings.Count(got, "<img") != 24 {
		t.Errorf("Expected all 24 logos rendered, got %d", strings.Count(got, "<img"))
	}
}

func TestBannerAlwaysCenteredGradient(t *testing.T) {
	got := ui.Render(compileBanner(CTABanner{
		Title: "Ship today",
		Ctas: []Cta{
			{Kind: CtaPrimary, Label: "Start", Href: "/start"},
			{Kind: CtaLink, Label: "Talk to us", Href: "/contact"},
		},
	}))

	if !strings.Contains(got, styleBannerInner) {
		t.Error("Expected centered gradient banner treatment")
	}
	if strings.Index(got, "Start") > strings.Index(got, "Talk to us") {
		t.Error("Expected CTAs in document order")
	}
}

func TestFooterColumnsAndLinks(t *testing.T) {
	got := ui.Render(compileFooter(Footer{Columns: []FooterColumn{
		{Heading: "Product", Links: []NavLink{
			{Label: "Pricing", Href: "#pricing"},
			{Label: "Status", Href: "https://status.acme.dev"},
		}},
		{Links: []NavLink{{Label: "Legal", Href: "/legal"}}},
	}}))

	if !strings.Contains(got, "Product") {
		t.Error("Expected column heading")
	}
	if strings.Count(got, "<h4") != 1 {
		t.Error("Expected heading only on the column that declares one")
	}
	if !strings.Contains(got, `href="#pricing"`) {
		t.Error("Expected in-page link")
	}
}

func TestFooterOutboundLinksOpenDetached(t *testing.T) {
	got := ui.Render(compileFooter(Footer{Columns: []FooterColumn{
		{Links: []NavLink{
			{Label: "Status", Href: "https://status.acme.dev"},
			{Label: "Pricing", Href: "#pricing"},
		}},
	}}))

	if strings.Count(got, `rel="noopener noreferrer"`) != 1 {
		t.Errorf("Expected noopener noreferrer on the outbound link only, got %q", got)
	}
	if strings.Count(got, `target="_blank"`) != 1 {
		t.Errorf("Expected target=_blank on the outbound link only, got %q", got)
	}
}
