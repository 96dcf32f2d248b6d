package view

import (
	gview "github.com/nfrund/courseboard/internal/view"
	"github.com/nfrund/courseboard/internal/view/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CourseList lists the courses created by the signed-in user.
func CourseList(items []CourseListItem) g.Node {
	return ui.Layout(
		ui.LayoutHeader(ui.LayoutTitle("Courses")),
		g.If(len(items) == 0,
			ui.Typography(ui.TypographyMuted, g.Text("You have not created any course yet.")),
		),
		ui.Card("",
			ui.CardContent("pt-6",
				ui.Table(
					ui.TableHeader(ui.TableRow(
						ui.TableHead("Image"), ui.TableHead("Name"), ui.TableHead("State"),
						ui.TableHead("Users"), ui.TableHead("Lessons"),
					)),
					ui.TableBody(g.Map(items, func(c CourseListItem) g.Node {
						return ui.TableRow(
							ui.TableCell(ui.Avatar("rounded",
								g.If(c.Image != "", ui.AvatarImage(c.Image, c.Name)),
								ui.AvatarFallback(gview.Initial(c.Name)),
							)),
							ui.TableCell(ui.TypographyAsLink(ui.TypographyLarge, "/admin/courses/"+c.Key, g.Text(c.Name))),
							ui.TableCell(h.Span(h.Class("text-muted-foreground"), g.Text(c.State))),
							ui.TableCell(g.Text(gview.Count(c.UsersCount, "users"))),
							ui.TableCell(g.Text(gview.Count(c.LessonsCount, "lessons"))),
						)
					})),
				),
			),
		),
	)
}
