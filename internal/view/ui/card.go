package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Card(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(cn("rounded-lg border bg-card text-card-foreground shadow-sm", class)), g.Group(children))
}

func CardHeader(children ...g.Node) g.Node {
	return h.Div(h.Class("flex flex-row items-center gap-4 p-6 pb-0"), g.Group(children))
}

func CardTitle(text string) g.Node {
	return h.H3(h.Class("text-lg font-semibold leading-none tracking-tight"), g.Text(text))
}

func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(cn("p-6 pt-0", class)), g.Group(children))
}
