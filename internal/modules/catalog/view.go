package catalog

import (
	"github.com/nfrund/courseboard/internal/domain"
	gview "github.com/nfrund/courseboard/internal/view"
	"github.com/nfrund/courseboard/internal/view/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// courseGrid renders course summaries as cards.
func courseGrid(title, empty string, courses []domain.CourseSummary) g.Node {
	return ui.Layout(
		ui.LayoutHeader(ui.LayoutTitle(title)),
		g.If(len(courses) == 0, ui.Typography(ui.TypographyMuted, g.Text(empty))),
		h.Div(h.Class("grid gap-4 sm:grid-cols-2 lg:grid-cols-3"),
			g.Map(courses, courseCard),
		),
	)
}

func courseCard(c domain.CourseSummary) g.Node {
	return ui.Card("",
		ui.CardHeader(
			ui.Avatar("rounded",
				g.Iff(c.Image != nil, func() g.Node { return ui.AvatarImage(*c.Image, c.Name) }),
				ui.AvatarFallback(gview.Initial(c.Name)),
			),
			ui.CardTitle(c.Name),
		),
		ui.CardContent("mt-4 flex flex-col gap-2",
			g.If(c.Presentation != "", ui.Typography(ui.TypographyMuted, g.Text(c.Presentation))),
			h.P(h.Class("text-sm"),
				g.Text(gview.Count(c.Counts.Users, "users")+" · "+gview.Count(c.Counts.Lessons, "lessons")),
			),
		),
	)
}
