package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Avatar is a round frame. AvatarImage, when given, covers AvatarFallback.
func Avatar(class string, children ...g.Node) g.Node {
	return h.Span(h.Class(cn("relative flex h-10 w-10 shrink-0 overflow-hidden rounded-full", class)), g.Group(children))
}

func AvatarImage(src, alt string) g.Node {
	return h.Img(h.Class("absolute inset-0 aspect-square h-full w-full object-cover"), h.Src(src), h.Alt(alt))
}

func AvatarFallback(text string) g.Node {
	return h.Span(h.Class("flex h-full w-full items-center justify-center rounded-full bg-muted uppercase"), g.Text(text))
}
