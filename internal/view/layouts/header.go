package layouts

import (
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/view"
	"github.com/nfrund/courseboard/internal/view/ui"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// HeaderProps configures the site header.
type HeaderProps struct {
	SiteTitle string
	Session   *auth.Session
}

// Header is the sticky site header: logo, site title, main links and the
// account controls.
func Header(props HeaderProps) g.Node {
	return h.Header(
		h.Class("sticky top-0 z-40 w-full border-b bg-background/95 backdrop-blur"),
		h.Div(
			h.Class("mx-auto flex h-16 max-w-5xl items-center gap-6 px-4"),
			hx.Boost("true"),
			h.A(h.Href("/"), h.Class("flex items-center gap-2"),
				h.Img(h.Src("/static/images/logo.svg"), h.Width("50"), h.Height("35"), h.Alt("app logo")),
			),
			ui.TypographyAsLink(ui.TypographyH3, "/", g.Text(props.SiteTitle)),
			h.A(h.Href("/explorer"), h.Class("text-sm text-muted-foreground hover:text-foreground"), g.Text("Explorer")),
			h.A(h.Href("/courses"), h.Class("text-sm text-muted-foreground hover:text-foreground"), g.Text("Courses")),
			h.Nav(
				h.Class("ml-auto flex items-center gap-2"),
				AuthButton(props.Session),
				ui.ThemeToggle(),
			),
		),
	)
}

// AuthButton shows the signed-in user with a logout link, or a login button.
func AuthButton(session *auth.Session) g.Node {
	if session == nil {
		return ui.LinkButton(ui.ButtonOutline, auth.LoginPath, "Login")
	}

	user := session.User
	return h.Div(
		h.Class("flex items-center gap-2"),
		ui.Avatar("h-8 w-8",
			g.Iff(user.Image != nil, func() g.Node { return ui.AvatarImage(*user.Image, user.DisplayName()) }),
			ui.AvatarFallback(view.Initial(user.Email)),
		),
		h.Span(h.Class("text-sm"), g.Text(user.Email)),
		h.A(h.Href("/auth/logout"), h.Class(ui.ButtonVariants(ui.ButtonGhost, ui.SizeSmall)), g.Text("Logout")),
	)
}
