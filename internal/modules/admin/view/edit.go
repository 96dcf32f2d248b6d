package view

import (
	"github.com/nfrund/courseboard/internal/domain"
	gview "github.com/nfrund/courseboard/internal/view"
	"github.com/nfrund/courseboard/internal/view/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const inputClass = "flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-sm"

// EditCourse is the course edit form. Field errors are shown under their
// inputs.
func EditCourse(data EditData) g.Node {
	return ui.Layout(
		ui.LayoutHeader(
			ui.LayoutTitle("Edit course"),
			ui.LinkButton(ui.ButtonGhost, "/admin/courses/"+data.Key, "Back"),
		),
		ui.Card("",
			ui.CardContent("pt-6",
				h.Form(
					h.Method("post"),
					h.Action("/admin/courses/"+data.Key+"/edit"),
					h.EncType("multipart/form-data"),
					h.Class("flex flex-col gap-4"),

					field("name", "Name", data.Errors,
						h.Input(h.Type("text"), h.ID("name"), h.Name("name"), h.Value(data.Form.Name), h.Required(), h.Class(inputClass)),
					),
					field("presentation", "Presentation", data.Errors,
						h.Textarea(h.ID("presentation"), h.Name("presentation"), h.Rows("6"), h.Class(inputClass+" h-auto"), g.Text(data.Form.Presentation)),
					),
					field("state", "State", data.Errors,
						h.Select(h.ID("state"), h.Name("state"), h.Class(inputClass),
							stateOption(domain.CourseDraft, data.Form.State),
							stateOption(domain.CoursePublished, data.Form.State),
						),
					),
					field("image", "Image", data.Errors,
						h.Div(h.Class("flex items-center gap-4"),
							ui.Avatar("h-16 w-16 rounded",
								g.If(data.Image != "", ui.AvatarImage(data.Image, data.Form.Name)),
								ui.AvatarFallback(gview.Initial(data.Form.Name)),
							),
							h.Input(h.Type("file"), h.ID("image"), h.Name("image"), h.Accept("image/*")),
						),
					),

					h.Div(h.Button(h.Type("submit"), h.Class(ui.ButtonVariants(ui.ButtonDefault, ui.SizeDefault)), g.Text("Save"))),
				),
			),
		),
	)
}

func field(name, label string, errs map[string]string, input g.Node) g.Node {
	msg, hasErr := errs[name]
	return h.Div(h.Class("flex flex-col gap-2"),
		h.Label(h.For(name), h.Class("text-sm font-medium"), g.Text(label)),
		input,
		g.If(hasErr, h.P(h.Class("text-sm text-red-600"), g.Text(msg))),
	)
}

func stateOption(state domain.CourseState, current string) g.Node {
	return h.Option(h.Value(string(state)), g.If(string(state) == current, h.Selected()), g.Text(string(state)))
}
