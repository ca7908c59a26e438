package core

// Utility-class tokens consumed by the section compilers. The strings are
// opaque to this package: the styling layer owns their meaning, the
// compilers only attach them.

const (
	stylePage      = "min-h-screen bg-white text-slate-900 antialiased"
	styleContainer = "mx-auto max-w-6xl px-6"
	styleSection   = "relative py-20"

	styleHeader     = "flex items-center justify-between py-6"
	styleBrand      = "flex items-center gap-2 text-lg font-semibold"
	styleBrandLogo  = "h-8 w-8"
	styleNav        = "hidden gap-8 text-sm font-medium sm:flex"
	styleNavLink    = "text-slate-600 hover:text-slate-900"
	styleHeroTitle  = "mt-16 text-4xl font-bold tracking-tight sm:text-6xl"
	styleHeroLeft   = "max-w-3xl"
	styleHeroCenter = "mx-auto max-w-3xl text-center"
	styleBulletList = "mt-8 space-y-3 text-slate-600"
	styleBulletItem = "flex items-start gap-2"
	styleCtaRow     = "mt-10 flex flex-wrap gap-4"
	styleHeroMedia  = "mt-20"

	styleDecorGradient = "absolute inset-0 -z-10 bg-gradient-to-b from-indigo-50 via-white to-white"
	styleDecorMesh     = "absolute inset-0 -z-10 bg-[radial-gradient(ellipse_at_top,theme(colors.indigo.100),transparent_60%)]"

	styleBtnPrimary   = "inline-flex items-center rounded-lg bg-indigo-600 px-5 py-2.5 text-sm font-semibold text-white hover:bg-indigo-500"
	styleBtnSecondary = "inline-flex items-center rounded-lg border border-slate-300 px-5 py-2.5 text-sm font-semibold hover:bg-slate-50"
	styleBtnLink      = "inline-flex items-center text-sm font-semibold text-indigo-600 hover:text-indigo-500"

	styleMediaImage   = "w-full"
	styleMediaRounded = "rounded-xl shadow-lg"
	styleMediaVideo   = "w-full rounded-xl shadow-lg"
	styleCodeBlock    = "overflow-x-auto rounded-xl bg-slate-900 p-6 text-sm text-slate-100"

	styleSectionTitle = "text-3xl font-bold tracking-tight"

	styleFeatureCard  = "rounded-xl border border-slate-200 p-6"
	styleFeatureIcon  = "text-2xl"
	styleFeatureTitle = "mt-4 font-semibold"
	styleFeatureDesc  = "mt-2 text-sm text-slate-600"

	styleQuoteGrid   = "grid gap-8 sm:grid-cols-2"
	styleQuoteCard   = "flex flex-col rounded-xl border border-slate-200 p-6"
	styleQuoteText   = "flex-1 text-slate-700"
	styleQuoteFooter = "mt-6 flex items-center gap-3"
	styleQuoteAvatar = "h-10 w-10 rounded-full object-cover"
	styleQuoteGlyph  = "flex h-10 w-10 items-center justify-center rounded-full bg-slate-100 font-semibold text-slate-500"
	styleQuoteAuthor = "text-sm font-semibold"
	styleQuoteRole   = "text-sm text-slate-500"
	styleQuoteLogo   = "ml-auto h-6 opacity-70"

	stylePricingGrid   = "grid gap-8 lg:grid-cols-3"
	styleTierCard      = "flex flex-col rounded-xl border border-slate-200 p-8"
	styleTierHighlight = "flex flex-col rounded-xl border-2 border-indigo-600 bg-indigo-50/50 p-8"
	styleTierName      = "font-semibold"
	styleTierPrice     = "mt-4 text-4xl font-bold"
	styleTierFeatures  = "mt-6 flex-1 space-y-3 text-sm text-slate-600"
	styleTierFeature   = "flex items-start gap-2"
	styleTierCta       = "mt-8"

	styleFaqList    = "mt-10 divide-y divide-slate-200"
	styleFaqItem    = "group py-4"
	styleFaqSummary = "cursor-pointer font-medium marker:content-none"
	styleFaqAnswer  = "mt-3 text-slate-600"

	styleLogoGrid = "grid grid-cols-2 items-center gap-10 sm:grid-cols-3 lg:grid-cols-6"
	styleLogoItem = "mx-auto h-8 opacity-60 grayscale"

	styleBannerInner = "rounded-2xl bg-gradient-to-r from-indigo-600 to-violet-600 px-8 py-16 text-center text-white"
	styleBannerTitle = "text-3xl font-bold tracking-tight sm:text-4xl"
	styleBannerCtas  = "mt-8 flex flex-wrap justify-center gap-4"

	styleFooter        = "border-t border-slate-200 py-16 text-sm"
	styleFooterGrid    = "grid gap-10 sm:grid-cols-2 lg:grid-cols-4"
	styleFooterHeading = "font-semibold"
	styleFooterLinks   = "mt-4 space-y-2"
	styleFooterLink    = "text-slate-600 hover:text-slate-900"
)

// featureGrid maps a features section's declared arity to its grid token.
var featureGrid = map[int]string{
	2: "mt-12 grid gap-8 sm:grid-cols-2",
	3: "mt-12 grid gap-8 sm:grid-cols-2 lg:grid-cols-3",
	4: "mt-12 grid gap-8 sm:grid-cols-2 lg:grid-cols-4",
}
