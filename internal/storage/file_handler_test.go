package storage

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHandler_Download(t *testing.T) {
	media := NewMediaStore(NewAferoStore(afero.NewMemMapFs()))
	url, err := media.SaveImage(context.Background(), "courses", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	e := echo.New()
	e.GET("/media/*", NewFileHandler(media).Download)

	t.Run("existing file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, pngHeader, rec.Body.Bytes())
	})

	t.Run("missing file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/courses/nope.png", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
