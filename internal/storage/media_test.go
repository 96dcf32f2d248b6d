package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestMediaStore_SaveImage(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	media := NewMediaStore(NewAferoStore(fs))

	t.Run("png is stored under a generated name", func(t *testing.T) {
		url, err := media.SaveImage(ctx, "courses", bytes.NewReader(pngHeader))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/media/courses/"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		exists, err := afero.Exists(fs, strings.TrimPrefix(url, MediaURLPrefix))
		require.NoError(t, err)
		assert.True(t, exists)

		rc, ct, err := media.Open(ctx, strings.TrimPrefix(url, MediaURLPrefix))
		require.NoError(t, err)
		defer rc.Close()
		data, _ := io.ReadAll(rc)
		assert.Equal(t, pngHeader, data)
		assert.Equal(t, "image/png", ct)

		require.NoError(t, media.Delete(ctx, url))
		exists, _ = afero.Exists(fs, strings.TrimPrefix(url, MediaURLPrefix))
		assert.False(t, exists)
	})

	t.Run("svg is accepted", func(t *testing.T) {
		url, err := media.SaveImage(ctx, "courses", strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(url, ".svg"))
	})

	t.Run("text is rejected", func(t *testing.T) {
		_, err := media.SaveImage(ctx, "courses", strings.NewReader("just some text"))
		assert.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("oversized images are rejected", func(t *testing.T) {
		big := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)
		_, err := media.SaveImage(ctx, "courses", bytes.NewReader(big))
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})
}

func TestMediaStore_PathTraversal(t *testing.T) {
	media := NewMediaStore(NewAferoStore(afero.NewMemMapFs()))

	for _, p := range []string{"", "../secret", "/etc/passwd", "courses/../../x"} {
		_, _, err := media.Open(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidPath, p)
	}

	assert.NoError(t, media.Delete(context.Background(), "https://example.com/a.png"))
}
