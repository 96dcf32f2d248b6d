package view

import (
	gview "github.com/nfrund/courseboard/internal/view"
	"github.com/nfrund/courseboard/internal/view/ui"
	g "maragu.dev/gomponents"
)

// UserDetail shows a single user.
func UserDetail(data UserData) g.Node {
	return ui.Layout(
		ui.LayoutHeader(ui.LayoutTitle("User")),
		ui.Card("",
			ui.CardHeader(
				ui.Avatar("h-16 w-16",
					g.If(data.Image != "", ui.AvatarImage(data.Image, data.Name)),
					ui.AvatarFallback(gview.Initial(data.Email)),
				),
				ui.CardTitle(data.Email),
			),
			ui.CardContent("mt-4",
				g.Iff(data.Name != "", func() g.Node {
					return ui.Typography(ui.TypographyP, g.Text(data.Name))
				}),
			),
		),
	)
}
