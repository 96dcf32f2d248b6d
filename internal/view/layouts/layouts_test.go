package layouts

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func renderNode(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func testSession(image *string) *auth.Session {
	id := surrealmodels.NewRecordID("user", "alice")
	name := "Alice"
	return &auth.Session{User: &domain.User{ID: &id, Email: "alice@example.com", Name: &name, Image: image}}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name     string
		props    HeaderProps
		contains []string
		excludes []string
	}{
		{
			name:  "logged out",
			props: HeaderProps{SiteTitle: "Courseboard"},
			contains: []string{
				`<header class="sticky`,
				`src="/static/images/logo.svg"`, `width="50"`, `height="35"`, `alt="app logo"`,
				">Courseboard</a>",
				`href="/explorer"`, ">Explorer</a>",
				`href="/courses"`, ">Courses</a>",
				"<nav", `href="/auth/login"`, ">Login</a>",
				`hx-post="/theme"`,
			},
			excludes: []string{"Logout"},
		},
		{
			name:     "logged in without image",
			props:    HeaderProps{SiteTitle: "Courseboard", Session: testSession(nil)},
			contains: []string{"alice@example.com", `href="/auth/logout"`, ">Logout</a>", ">a</span>"},
			excludes: []string{">Login</a>", "<img class=\"absolute"},
		},
		{
			name: "logged in with image",
			props: HeaderProps{SiteTitle: "Courseboard", Session: testSession(func() *string {
				s := "/media/alice.png"
				return &s
			}())},
			contains: []string{`src="/media/alice.png"`, `alt="Alice"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderNode(t, Header(tt.props))
			for _, s := range tt.contains {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, html, s)
			}
		})
	}
}

func TestBase(t *testing.T) {
	data := PageData{
		Title: "Courses",
		Site:  SiteConfig{Title: "Courseboard", Description: "Learn <things>"},
		Theme: ThemeDark,
		Flash: view.FlashData{Success: []string{"Saved"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Page(data, h.P(g.Text("page body"))).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `<html lang="en" class="dark">`)
	assert.Contains(t, html, "<title>Courses - Courseboard</title>")
	assert.Contains(t, html, `content="Learn &lt;things&gt;"`)
	assert.Contains(t, html, "<header")
	assert.Contains(t, html, `role="status"`)
	assert.Contains(t, html, `<main id="content"><p>page body</p></main>`)
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Courses - Courseboard", CalculateTitle("Courses", "Courseboard"))
	assert.Equal(t, "Courseboard", CalculateTitle("", "Courseboard"))
	assert.Equal(t, "Courses", CalculateTitle("Courses", ""))
}

func TestTheme(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, ThemeLight, Theme(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ThemeCookie, Value: ThemeDark})
	assert.Equal(t, ThemeDark, Theme(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ThemeCookie, Value: "purple"})
	assert.Equal(t, ThemeLight, Theme(e.NewContext(req, httptest.NewRecorder())))
}
