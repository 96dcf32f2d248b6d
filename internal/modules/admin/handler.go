package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/events"
	"github.com/nfrund/courseboard/internal/middleware"
	"github.com/nfrund/courseboard/internal/modules/admin/view"
	"github.com/nfrund/courseboard/internal/storage"
	gview "github.com/nfrund/courseboard/internal/view"
	"github.com/nfrund/courseboard/internal/view/layouts"
	g "maragu.dev/gomponents"
)

// courseImageDir is where uploaded course images are stored in the media store.
const courseImageDir = "courses"

var formValidator = validator.New()

// Handler serves the course administration pages.
type Handler struct {
	courses   domain.CourseRepository
	users     domain.UserRepository
	media     *storage.MediaStore
	publisher events.Publisher
	site      layouts.SiteConfig
}

// NewHandler creates a new Handler.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		courses:   deps.Courses,
		users:     deps.Users,
		media:     deps.Media,
		publisher: deps.Publisher,
		site:      deps.Site,
	}
}

// CoursePage renders a course owned by the signed-in user with one page of
// its enrolled users.
func (h *Handler) CoursePage(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	page := parsePage(c.QueryParam("page"))
	logger.Debug("Rendering admin course page", "page", page)

	session, err := auth.RequiredSession(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, auth.LoginPath)
	}

	course, err := h.courses.GetCourse(ctx, domain.CourseQuery{
		CourseID: c.Param("courseId"),
		UserID:   session.UserKey(),
		UserPage: page,
	})
	if err != nil {
		return h.handleError(c, err, "Failed to load course")
	}
	logger.Debug("Loaded course", "course_id", c.Param("courseId"), "name", course.Name,
		"users", course.Counts.Users, "lessons", course.Counts.Lessons, "page", course.Page)

	return h.render(c, http.StatusOK, "Courses", view.CoursePage(view.NewCourseData(course)))
}

// ListCourses renders the courses created by the signed-in user.
func (h *Handler) ListCourses(c echo.Context) error {
	session, err := auth.RequiredSession(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, auth.LoginPath)
	}

	courses, err := h.courses.ListByCreator(c.Request().Context(), session.UserKey())
	if err != nil {
		return h.handleError(c, err, "Failed to list courses")
	}
	return h.render(c, http.StatusOK, "Courses", view.CourseList(view.NewCourseListItems(courses)))
}

// EditCourse renders the edit form of an owned course.
func (h *Handler) EditCourse(c echo.Context) error {
	session, err := auth.RequiredSession(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, auth.LoginPath)
	}

	course, err := h.courses.GetOwnedCourse(c.Request().Context(), c.Param("courseId"), session.UserKey())
	if err != nil {
		return h.handleError(c, err, "Failed to load course for editing")
	}
	return h.render(c, http.StatusOK, "Edit course", view.EditCourse(view.NewEditData(course)))
}

// UpdateCourse validates the submitted form, stores an optional new image
// and saves the course. Invalid input re-renders the form with 422.
func (h *Handler) UpdateCourse(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	session, err := auth.RequiredSession(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, auth.LoginPath)
	}

	course, err := h.courses.GetOwnedCourse(ctx, c.Param("courseId"), session.UserKey())
	if err != nil {
		return h.handleError(c, err, "Failed to load course for update")
	}

	var form view.CourseForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Presentation = strings.TrimSpace(form.Presentation)

	data := view.NewEditData(course)
	data.Form = form
	data.Errors = validationErrors(formValidator.Struct(form))

	newImage, err := h.saveUploadedImage(c)
	if err != nil {
		if errors.Is(err, storage.ErrNotAnImage) || errors.Is(err, storage.ErrImageTooLarge) {
			if data.Errors == nil {
				data.Errors = map[string]string{}
			}
			data.Errors["image"] = err.Error()
		} else {
			logger.Error("Failed to store course image", slog.String("error", err.Error()))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store image")
		}
	}

	if len(data.Errors) > 0 {
		h.discardImage(ctx, newImage)
		return h.render(c, http.StatusUnprocessableEntity, "Edit course", view.EditCourse(data))
	}

	oldImage := course.Image
	course.Name = form.Name
	course.Presentation = form.Presentation
	course.State = domain.CourseState(form.State)
	if newImage != "" {
		course.Image = &newImage
	}

	updated, err := h.courses.UpdateCourse(ctx, course)
	if err != nil {
		h.discardImage(ctx, newImage)
		return h.handleError(c, err, "Failed to update course")
	}
	if newImage != "" && oldImage != nil {
		h.discardImage(ctx, *oldImage)
	}

	key := domain.RecordKey(updated.ID)
	evt := events.CourseUpdated{
		CourseID:  key,
		Name:      updated.Name,
		State:     string(updated.State),
		ImageSet:  newImage != "",
		UpdatedAt: time.Now().UTC(),
	}
	if err := events.PublishCourseUpdated(ctx, h.publisher, session.UserKey(), evt); err != nil {
		logger.Warn("Failed to publish course update", slog.String("error", err.Error()))
	}

	gview.SetFlashSuccess(c, "Course saved.")
	return c.Redirect(http.StatusSeeOther, "/admin/courses/"+key)
}

// Lessons renders the lessons of an owned course.
func (h *Handler) Lessons(c echo.Context) error {
	ctx := c.Request().Context()

	session, err := auth.RequiredSession(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, auth.LoginPath)
	}

	course, err := h.courses.GetOwnedCourse(ctx, c.Param("courseId"), session.UserKey())
	if err != nil {
		return h.handleError(c, err, "Failed to load course")
	}
	lessons, err := h.courses.ListLessons(ctx, c.Param("courseId"), session.UserKey())
	if err != nil {
		return h.handleError(c, err, "Failed to list lessons")
	}
	return h.render(c, http.StatusOK, "Lessons", view.Lessons(view.NewLessonsData(course, lessons)))
}

// UserDetail renders a single user.
func (h *Handler) UserDetail(c echo.Context) error {
	if _, err := auth.RequiredSession(c); err != nil {
		return c.Redirect(http.StatusSeeOther, auth.LoginPath)
	}

	user, err := h.users.FindUserByID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.handleError(c, err, "Failed to load user")
	}
	return h.render(c, http.StatusOK, "User", view.UserDetail(view.NewUserData(user)))
}

func (h *Handler) render(c echo.Context, status int, title string, content g.Node) error {
	return c.Render(status, "", layouts.Page(layouts.NewPageData(c, h.site, title), content))
}

// handleError maps repository errors to HTTP responses. Anything that is
// not a missing record goes to the central error handler.
func (h *Handler) handleError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Redirect(http.StatusSeeOther, auth.LoginPath)
	default:
		middleware.FromContext(c.Request().Context()).Error(msg, slog.String("error", err.Error()))
		return err
	}
}

// saveUploadedImage stores the "image" form file, if one was sent, and
// returns its URL.
func (h *Handler) saveUploadedImage(c echo.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	if fileHeader.Size == 0 {
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return h.media.SaveImage(c.Request().Context(), courseImageDir, src)
}

func (h *Handler) discardImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := h.media.Delete(ctx, url); err != nil {
		middleware.FromContext(ctx).Warn("Failed to delete course image", "url", url, "error", err)
	}
}

// parsePage reads a 1-based page number; anything invalid is page 1.
// Pages past domain.MaxUserPage, including values too large for an int,
// become domain.MaxUserPage.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return domain.MaxUserPage
	}
	if err != nil || page < 1 {
		return 1
	}
	if page > domain.MaxUserPage {
		return domain.MaxUserPage
	}
	return page
}

var fieldMessages = map[string]string{
	"required": "This field is required.",
	"min":      "This value is too short.",
	"max":      "This value is too long.",
	"oneof":    "Choose one of the listed values.",
}

// validationErrors maps validator errors to form field names.
func validationErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "This value is invalid."
		}
		out[strings.ToLower(fe.Field())] = msg
	}
	return out
}
