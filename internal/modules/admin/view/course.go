package view

import (
	"fmt"

	gview "github.com/nfrund/courseboard/internal/view"
	"github.com/nfrund/courseboard/internal/view/ui"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// CoursePage shows one page of the course's users next to the course card.
func CoursePage(data CourseData) g.Node {
	return ui.Layout(
		ui.LayoutHeader(ui.LayoutTitle("Courses")),
		ui.LayoutContent("",
			ui.Card("",
				ui.CardHeader(ui.CardTitle("Users")),
				ui.CardContent("mt-4",
					ui.Table(
						ui.TableHeader(
							ui.TableRow(ui.TableHead("Image"), ui.TableHead("Name")),
						),
						ui.TableBody(
							g.Map(data.Users, userRow),
						),
					),
					pagination(data),
				),
			),
			courseCard(data),
		),
	)
}

func userRow(u UserRow) g.Node {
	return ui.TableRow(
		ui.TableCell(
			ui.Avatar("rounded",
				g.If(u.Image != "", ui.AvatarImage(u.Image, u.Name)),
				ui.AvatarFallback(gview.Initial(u.Email)),
			),
		),
		ui.TableCell(
			ui.TypographyAsLink(ui.TypographyLarge, "/admin/users/"+u.Key, g.Text(u.Email)),
		),
	)
}

func courseCard(data CourseData) g.Node {
	return ui.Card("flex-1",
		ui.CardHeader(
			ui.Avatar("rounded",
				g.If(data.Image != "", ui.AvatarImage(data.Image, data.Name)),
				ui.AvatarFallback(gview.Initial(data.Name)),
			),
			ui.CardTitle(data.Name),
		),
		ui.CardContent("mt-4 flex flex-col gap-2",
			h.P(g.Text(gview.Count(data.UsersCount, "users"))),
			h.P(g.Text(gview.Count(data.LessonsCount, "lessons"))),
			h.Div(h.Class("flex gap-2"),
				ui.LinkButton(ui.ButtonOutline, fmt.Sprintf("/admin/courses/%s/edit", data.Key), "Edit"),
				ui.LinkButton(ui.ButtonOutline, fmt.Sprintf("/admin/courses/%s/lessons", data.Key), "Edit lessons"),
			),
		),
	)
}

func pagination(data CourseData) g.Node {
	if !data.HasPrev && !data.HasNext {
		return nil
	}
	return h.Nav(
		h.Class("mt-4 flex justify-between"),
		h.Aria("label", "Users pagination"),
		hx.Boost("true"),
		g.If(data.HasPrev, ui.LinkButton(ui.ButtonOutline, fmt.Sprintf("?page=%d", data.Page-1), "Previous")),
		g.If(data.HasNext, ui.LinkButton(ui.ButtonOutline, fmt.Sprintf("?page=%d", data.Page+1), "Next")),
	)
}
