// Package ui holds the small component library every page is composed from.
// Components are gomponents builders styled with Tailwind classes.
package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// cn joins class lists, skipping empty ones.
func cn(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// Layout is the page container.
func Layout(children ...g.Node) g.Node {
	return h.Div(h.Class("mx-auto flex w-full max-w-5xl flex-col gap-4 px-4 py-6"), g.Group(children))
}

// LayoutHeader groups the page title and its actions.
func LayoutHeader(children ...g.Node) g.Node {
	return h.Div(h.Class("flex items-center justify-between gap-2"), g.Group(children))
}

// LayoutTitle is the page heading.
func LayoutTitle(text string) g.Node {
	return h.H1(h.Class("text-2xl font-bold tracking-tight"), g.Text(text))
}

// LayoutContent holds the body of the page.
func LayoutContent(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(cn("flex flex-col gap-4 lg:flex-row", class)), g.Group(children))
}
