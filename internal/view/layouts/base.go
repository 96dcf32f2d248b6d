package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/courseboard/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxScript = `<script src="https://unpkg.com/htmx.org@2.0.4"></script>`

// Base is the HTML document shell shared by every page. The content may be
// any templ component; gomponents pages pass through view.AdaptGomponentToTempl.
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		theme := data.Theme
		if theme == "" {
			theme = ThemeLight
		}

		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en" class="`+templ.EscapeString(theme)+`"><head>`+
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<meta name="description" content="`+templ.EscapeString(data.Site.Description)+`">`+
			`<title>`+templ.EscapeString(CalculateTitle(data.Title, data.Site.Title))+`</title>`+
			`<link rel="icon" href="/static/images/logo.svg">`+
			`<link rel="stylesheet" href="/static/app.css">`+
			htmxScript+
			`</head><body class="min-h-screen bg-background text-foreground antialiased">`); err != nil {
			return err
		}

		if err := Header(HeaderProps{SiteTitle: data.Site.Title, Session: data.Session}).Render(w); err != nil {
			return err
		}
		if !data.Flash.Empty() {
			if err := flashMessages(data.Flash).Render(w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<main id="content">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Page renders a gomponents page inside Base.
func Page(data PageData, content g.Node) templ.Component {
	return Base(data, view.AdaptGomponentToTempl(content))
}

func flashMessages(flash view.FlashData) g.Node {
	return h.Div(
		h.Class("mx-auto mt-4 flex max-w-5xl flex-col gap-2 px-4"),
		g.Map(flash.Success, func(msg string) g.Node {
			return h.Div(h.Class("rounded-md border border-green-300 bg-green-50 px-4 py-2 text-green-800"), g.Attr("role", "status"), g.Text(msg))
		}),
		g.Map(flash.Error, func(msg string) g.Node {
			return h.Div(h.Class("rounded-md border border-red-300 bg-red-50 px-4 py-2 text-red-800"), g.Attr("role", "alert"), g.Text(msg))
		}),
	)
}
