package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize caps uploaded course images.
const MaxImageSize = 2 << 20

// MediaURLPrefix is the public path media files are served under.
const MediaURLPrefix = "/media/"

var (
	ErrNotAnImage    = errors.New("uploaded file is not a supported image")
	ErrImageTooLarge = errors.New("uploaded image is too large")
	ErrInvalidPath   = errors.New("invalid media path")
)

var imageExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// MediaStore keeps user uploaded images and maps them to public URLs.
type MediaStore struct {
	store Store
}

// NewMediaStore wraps a Store.
func NewMediaStore(store Store) *MediaStore {
	return &MediaStore{store: store}
}

// SaveImage stores an image under dir with a generated name and returns its
// public URL. The content type is sniffed from the data rather than trusted
// from the client.
func (m *MediaStore) SaveImage(ctx context.Context, dir string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	contentType := detectImageType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrNotAnImage
	}

	p := path.Join(dir, uuid.NewString()+ext)
	if _, err := m.store.Save(ctx, p, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return MediaURLPrefix + p, nil
}

// Open returns the file behind a path relative to MediaURLPrefix.
func (m *MediaStore) Open(ctx context.Context, p string) (io.ReadCloser, string, error) {
	clean, err := cleanMediaPath(p)
	if err != nil {
		return nil, "", err
	}
	f, err := m.store.Get(ctx, clean)
	if err != nil {
		return nil, "", err
	}
	return f, contentTypeFor(clean), nil
}

// Delete removes the file behind a public media URL. URLs outside the media
// prefix are ignored.
func (m *MediaStore) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, MediaURLPrefix) {
		return nil
	}
	clean, err := cleanMediaPath(strings.TrimPrefix(url, MediaURLPrefix))
	if err != nil {
		return err
	}
	return m.store.Delete(ctx, clean)
}

func cleanMediaPath(p string) (string, error) {
	if p == "" || strings.Contains(p, "..") || strings.HasPrefix(p, "/") {
		return "", ErrInvalidPath
	}
	return path.Clean(p), nil
}

func detectImageType(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("<svg")) || (bytes.HasPrefix(trimmed, []byte("<?xml")) && bytes.Contains(trimmed, []byte("<svg"))) {
		return "image/svg+xml"
	}
	return http.DetectContentType(data)
}

func contentTypeFor(p string) string {
	ext := path.Ext(p)
	for ct, e := range imageExtensions {
		if e == ext {
			return ct
		}
	}
	return "application/octet-stream"
}
