package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Table(children ...g.Node) g.Node {
	return h.Div(h.Class("relative w-full overflow-auto"),
		h.Table(h.Class("w-full caption-bottom text-sm"), g.Group(children)),
	)
}

func TableHeader(children ...g.Node) g.Node {
	return h.THead(h.Class("[&_tr]:border-b"), g.Group(children))
}

func TableBody(children ...g.Node) g.Node {
	return h.TBody(h.Class("[&_tr:last-child]:border-0"), g.Group(children))
}

func TableRow(children ...g.Node) g.Node {
	return h.Tr(h.Class("border-b transition-colors hover:bg-muted/50"), g.Group(children))
}

func TableHead(text string) g.Node {
	return h.Th(h.Class("h-12 px-4 text-left align-middle font-medium text-muted-foreground"), g.Text(text))
}

func TableCell(children ...g.Node) g.Node {
	return h.Td(h.Class("p-4 align-middle"), g.Group(children))
}
