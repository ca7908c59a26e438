package core

import (
	"github.com/3-lines-studio/midgard/internal/ui"
)

// compileHero is the one compiler that receives page context: it renders
// the brand header and navigation along with the hero content.
func compileHero(s Hero, ctx PageContext) ui.Node {
	wrap := ui.El("section").Class(styleSection)

	if decor := heroDecor(s.Decor); decor != nil {
		wrap.Append(decor)
	}

	inner := ui.El("div").Class(styleContainer)
	inner.Append(brandHeader(ctx))

	content := ui.El("div")
	if s.Align == AlignCenter {
		content.Class(styleHeroCenter)
	} else {
		content.Class(styleHeroLeft)
	}

	content.Append(ui.El("h1", ui.Text(s.Title)).Class(styleHeroTitle))

	if len(s.Bullets) > 0 {
		list := ui.El("ul").Class(styleBulletList)
		for _, b := range s.Bullets {
			list.Append(ui.El("li",
				ui.El("span", ui.Text(checkGlyph)),
				ui.El("span", ui.Text(b)),
			).Class(styleBulletItem))
		}
		content.Append(list)
	}

	content.Append(ctaRow(s.Ctas, styleCtaRow))

	if s.Media != nil {
		content.Append(ui.El("div", heroMedia(s.Media)).Class(styleHeroMedia))
	}

	inner.Append(content)
	return wrap.Append(inner)
}

func heroDecor(d Decor) ui.Node {
	var class string
	switch d {
	case DecorGradient:
		class = styleDecorGradient
	case DecorMesh:
		class = styleDecorMesh
	default:
		return nil
	}
	return ui.El("div").Class(class).Set("aria-hidden", "true")
}

func brandHeader(ctx PageContext) ui.Node {
	brand := ui.El("div").Class(styleBrand)
	if ctx.Logo != "" {
		brand.Append(ui.El("img").Set("src", ctx.Logo).Set("alt", ctx.Brand).Class(styleBrandLogo))
	}
	brand.Append(ui.El("span", ui.Text(ctx.Brand)))

	header := ui.El("header", brand).Class(styleHeader)

	if len(ctx.Nav) > 0 {
		nav := ui.El("nav").Class(styleNav)
		for _, l := range ctx.Nav {
			nav.Append(link(l, styleNavLink))
		}
		header.Append(nav)
	}

	return header
}

// heroMedia picks exactly one of the three media rendering paths.
func heroMedia(m Media) ui.Node {
	switch v := m.(type) {
	case Image:
		img := ui.El("img").Set("src", v.Src).Class(styleMediaImage)
		if v.Alt != "" {
			img.Set("alt", v.Alt)
		}
		if v.Rounded {
			img.Class(styleMediaRounded)
		}
		return img
	case Video:
		video := ui.El("video").Set("src", v.Src).Class(styleMediaVideo)
		if v.Poster != "" {
			video.Set("poster", v.Poster)
		}
		if v.Autoplay {
			video.Flag("autoplay")
			video.Flag("muted")
			video.Flag("playsinline")
		}
		if v.Loop {
			video.Flag("loop")
		}
		return video
	case Code:
		code := ui.El("code", ui.Text(v.Content))
		if v.Language != "" {
			code.Class("language-" + v.Language)
		}
		return ui.El("pre", code).Class(styleCodeBlock)
	}
	return nil
}
