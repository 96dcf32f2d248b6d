package rendering

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestUniversalRenderer_RenderComponent(t *testing.T) {
	r := NewUniversalRenderer()
	ctx := context.Background()

	tests := []struct {
		name      string
		component any
		want      string
		wantErr   bool
	}{
		{name: "templ component", component: templ.Raw("<b>templ</b>"), want: "<b>templ</b>"},
		{name: "gomponents node", component: h.Span(g.Text("node")), want: "<span>node</span>"},
		{name: "unsupported", component: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderComponent(ctx, tt.component)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestUniversalRenderer_Echo(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()

	e.GET("/render", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", h.P(g.Text("via echo")))
	})
	e.GET("/page", func(c echo.Context) error {
		return NewUniversalRenderer().RenderPage(c, http.StatusCreated, h.P(g.Text("page")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>via echo</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "<p>page</p>", rec.Body.String())
}
