package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

type ButtonVariant string

const (
	ButtonDefault ButtonVariant = "default"
	ButtonOutline ButtonVariant = "outline"
	ButtonGhost   ButtonVariant = "ghost"
	ButtonLink    ButtonVariant = "link"
)

type ButtonSize string

const (
	SizeDefault ButtonSize = "default"
	SizeSmall   ButtonSize = "sm"
	SizeIcon    ButtonSize = "icon"
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 disabled:pointer-events-none disabled:opacity-50"

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonDefault: "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonOutline: "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	ButtonGhost:   "hover:bg-accent hover:text-accent-foreground",
	ButtonLink:    "text-primary underline-offset-4 hover:underline",
}

var buttonSizeClasses = map[ButtonSize]string{
	SizeDefault: "h-10 px-4 py-2",
	SizeSmall:   "h-9 rounded-md px-3",
	SizeIcon:    "h-10 w-10",
}

// ButtonVariants returns the classes of a button. Links styled as buttons
// use it directly.
func ButtonVariants(variant ButtonVariant, size ButtonSize) string {
	v, ok := buttonVariantClasses[variant]
	if !ok {
		v = buttonVariantClasses[ButtonDefault]
	}
	s, ok := buttonSizeClasses[size]
	if !ok {
		s = buttonSizeClasses[SizeDefault]
	}
	return cn(buttonBase, v, s)
}

// LinkButton is an anchor with button styling.
func LinkButton(variant ButtonVariant, href, text string) g.Node {
	return h.A(h.Href(href), h.Class(ButtonVariants(variant, SizeSmall)), g.Text(text))
}

// ThemeToggle switches between the light and dark theme. The server answers
// with HX-Refresh so the page re-renders with the new theme class.
func ThemeToggle() g.Node {
	return h.Button(
		h.Type("button"),
		h.Class(ButtonVariants(ButtonGhost, SizeIcon)),
		h.Aria("label", "Toggle theme"),
		hx.Post("/theme"),
		hx.Swap("none"),
		h.Span(h.Class("dark:hidden"), g.Text("☾")),
		h.Span(h.Class("hidden dark:inline"), g.Text("☀")),
	)
}
