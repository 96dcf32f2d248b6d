package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// TypographyVariant selects the text style.
type TypographyVariant string

const (
	TypographyH1    TypographyVariant = "h1"
	TypographyH2    TypographyVariant = "h2"
	TypographyH3    TypographyVariant = "h3"
	TypographyP     TypographyVariant = "p"
	TypographyLarge TypographyVariant = "large"
	TypographySmall TypographyVariant = "small"
	TypographyMuted TypographyVariant = "muted"
	TypographyLink  TypographyVariant = "link"
)

var typographyClasses = map[TypographyVariant]string{
	TypographyH1:    "scroll-m-20 text-4xl font-extrabold tracking-tight lg:text-5xl",
	TypographyH2:    "scroll-m-20 text-3xl font-semibold tracking-tight",
	TypographyH3:    "scroll-m-20 text-2xl font-semibold tracking-tight",
	TypographyP:     "leading-7",
	TypographyLarge: "text-lg font-semibold",
	TypographySmall: "text-sm font-medium leading-none",
	TypographyMuted: "text-sm text-muted-foreground",
	TypographyLink:  "font-medium text-primary underline underline-offset-4",
}

func typographyClass(variant TypographyVariant) string {
	if c, ok := typographyClasses[variant]; ok {
		return c
	}
	return typographyClasses[TypographyP]
}

// Typography renders text in the element matching the variant.
func Typography(variant TypographyVariant, children ...g.Node) g.Node {
	class := h.Class(typographyClass(variant))
	switch variant {
	case TypographyH1:
		return h.H1(class, g.Group(children))
	case TypographyH2:
		return h.H2(class, g.Group(children))
	case TypographyH3:
		return h.H3(class, g.Group(children))
	case TypographyP:
		return h.P(class, g.Group(children))
	case TypographySmall:
		return h.Small(class, g.Group(children))
	default:
		return h.Div(class, g.Group(children))
	}
}

// TypographyAsLink renders the variant's style on an anchor.
func TypographyAsLink(variant TypographyVariant, href string, children ...g.Node) g.Node {
	return h.A(h.Href(href), h.Class(typographyClass(variant)), g.Group(children))
}
