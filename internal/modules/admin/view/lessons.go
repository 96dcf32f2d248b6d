package view

import (
	"github.com/nfrund/courseboard/internal/view/ui"
	g "maragu.dev/gomponents"
)

// Lessons lists the lessons of a course in rank order.
func Lessons(data LessonsData) g.Node {
	return ui.Layout(
		ui.LayoutHeader(
			ui.LayoutTitle(data.CourseName+" lessons"),
			ui.LinkButton(ui.ButtonGhost, "/admin/courses/"+data.CourseKey, "Back"),
		),
		ui.Card("",
			ui.CardContent("pt-6",
				g.If(len(data.Lessons) == 0, ui.Typography(ui.TypographyMuted, g.Text("This course has no lessons yet."))),
				ui.Table(
					ui.TableHeader(ui.TableRow(ui.TableHead("Rank"), ui.TableHead("Name"), ui.TableHead("State"))),
					ui.TableBody(g.Map(data.Lessons, func(l LessonRow) g.Node {
						return ui.TableRow(
							ui.TableCell(g.Text(l.Rank)),
							ui.TableCell(g.Text(l.Name)),
							ui.TableCell(g.Text(l.State)),
						)
					})),
				),
			),
		),
	)
}
