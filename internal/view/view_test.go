package view_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/nfrund/courseboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestInitial(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alice@example.com", "a"},
		{"Émilie", "É"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, view.Initial(tt.in), tt.in)
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "0 users", view.Count(0, "users"))
	assert.Equal(t, "1,234 lessons", view.Count(1234, "lessons"))
}

func TestAdapters(t *testing.T) {
	node := h.P(g.Text("from gomponents"))

	var buf bytes.Buffer
	require.NoError(t, view.AdaptGomponentToTempl(node).Render(context.Background(), &buf))
	assert.Equal(t, "<p>from gomponents</p>", buf.String())

	component := templ.Raw("<em>from templ</em>")
	buf.Reset()
	require.NoError(t, h.Div(view.AdaptTemplToGomponent(context.Background(), component)).Render(&buf))
	assert.Equal(t, "<div><em>from templ</em></div>", buf.String())
}
