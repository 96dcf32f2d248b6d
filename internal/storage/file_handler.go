package storage

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/middleware"
)

// FileHandler serves uploaded media to browsers.
type FileHandler struct {
	media *MediaStore
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(media *MediaStore) *FileHandler {
	return &FileHandler{media: media}
}

// Download streams the file named by the wildcard part of the route.
func (h *FileHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	p := c.Param("*")
	content, contentType, err := h.media.Open(ctx, p)
	if err != nil {
		if errors.Is(err, ErrInvalidPath) || errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound, "File not found")
		}
		logger.Error("Failed to open media file", slog.String("path", p), slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, "Could not retrieve file")
	}
	defer content.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	return c.Stream(http.StatusOK, contentType, content)
}
