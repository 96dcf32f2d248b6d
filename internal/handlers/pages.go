package handlers

import (
	"github.com/nfrund/courseboard/internal/view/layouts"
	"github.com/nfrund/courseboard/internal/view/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const inputClass = "flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-sm"

// LoginPage is the sign-in form.
func LoginPage(email string) g.Node {
	return ui.Layout(
		h.Div(h.Class("mx-auto w-full max-w-sm"),
			ui.Card("",
				ui.CardHeader(ui.CardTitle("Login")),
				ui.CardContent("mt-4",
					h.Form(h.Method("post"), h.Action("/auth/login"), h.Class("flex flex-col gap-4"),
						h.Label(h.For("email"), h.Class("text-sm font-medium"), g.Text("Email")),
						h.Input(h.Type("email"), h.ID("email"), h.Name("email"), h.Value(email), h.Required(), h.AutoComplete("email"), h.Class(inputClass)),
						h.Label(h.For("password"), h.Class("text-sm font-medium"), g.Text("Password")),
						h.Input(h.Type("password"), h.ID("password"), h.Name("password"), h.Required(), h.AutoComplete("current-password"), h.Class(inputClass)),
						h.Button(h.Type("submit"), h.Class(ui.ButtonVariants(ui.ButtonDefault, ui.SizeDefault)), g.Text("Login")),
					),
				),
			),
		),
	)
}

// HomePage is the landing page.
func HomePage(site layouts.SiteConfig, signedIn bool) g.Node {
	return ui.Layout(
		ui.Typography(ui.TypographyH1, g.Text(site.Title)),
		ui.Typography(ui.TypographyP, g.Text(site.Description)),
		h.Div(h.Class("flex gap-2"),
			ui.LinkButton(ui.ButtonDefault, "/explorer", "Explore courses"),
			g.If(signedIn, ui.LinkButton(ui.ButtonOutline, "/admin/courses", "Manage my courses")),
			g.If(!signedIn, ui.LinkButton(ui.ButtonOutline, "/auth/login", "Login")),
		),
	)
}
