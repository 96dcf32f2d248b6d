package view

import (
	"github.com/nfrund/courseboard/internal/domain"
)

// UserRow is one enrolled user in the course users table.
type UserRow struct {
	Key   string
	Email string
	Name  string
	Image string
}

// CourseData is the view model of the admin course page.
type CourseData struct {
	Key          string
	Name         string
	Image        string
	UsersCount   int
	LessonsCount int
	Users        []UserRow
	Page         int
	HasPrev      bool
	HasNext      bool
}

// CourseListItem is one row of the admin course list.
type CourseListItem struct {
	Key          string
	Name         string
	Image        string
	State        string
	UsersCount   int
	LessonsCount int
}

// CourseForm holds the editable course fields as submitted by the browser.
type CourseForm struct {
	Name         string `form:"name" validate:"required,min=3,max=120"`
	Presentation string `form:"presentation" validate:"max=5000"`
	State        string `form:"state" validate:"required,oneof=draft published"`
}

// EditData is the view model of the course edit page.
type EditData struct {
	Key    string
	Image  string
	Form   CourseForm
	Errors map[string]string
}

// LessonRow is one lesson of a course.
type LessonRow struct {
	Rank  string
	Name  string
	State string
}

// LessonsData is the view model of the lessons page.
type LessonsData struct {
	CourseKey  string
	CourseName string
	Lessons    []LessonRow
}

// UserData is the view model of the user detail page.
type UserData struct {
	Key   string
	Email string
	Name  string
	Image string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func newUserRow(u domain.User) UserRow {
	return UserRow{
		Key:   domain.RecordKey(u.ID),
		Email: u.Email,
		Name:  u.DisplayName(),
		Image: deref(u.Image),
	}
}

// NewCourseData converts the course detail returned by the repository.
func NewCourseData(d *domain.CourseDetail) CourseData {
	users := make([]UserRow, 0, len(d.Users))
	for _, u := range d.Users {
		users = append(users, newUserRow(u))
	}
	return CourseData{
		Key:          domain.RecordKey(d.ID),
		Name:         d.Name,
		Image:        deref(d.Image),
		UsersCount:   d.Counts.Users,
		LessonsCount: d.Counts.Lessons,
		Users:        users,
		Page:         d.Page,
		HasPrev:      d.HasPrevPage(),
		HasNext:      d.HasNextPage(),
	}
}

// NewCourseListItems converts course summaries for the course list.
func NewCourseListItems(courses []domain.CourseSummary) []CourseListItem {
	items := make([]CourseListItem, 0, len(courses))
	for _, c := range courses {
		items = append(items, CourseListItem{
			Key:          domain.RecordKey(c.ID),
			Name:         c.Name,
			Image:        deref(c.Image),
			State:        string(c.State),
			UsersCount:   c.Counts.Users,
			LessonsCount: c.Counts.Lessons,
		})
	}
	return items
}

// NewEditData prefills the edit form from a stored course.
func NewEditData(c *domain.Course) EditData {
	return EditData{
		Key:   domain.RecordKey(c.ID),
		Image: deref(c.Image),
		Form: CourseForm{
			Name:         c.Name,
			Presentation: c.Presentation,
			State:        string(c.State),
		},
	}
}

// NewLessonsData converts a course and its lessons.
func NewLessonsData(c *domain.Course, lessons []domain.Lesson) LessonsData {
	rows := make([]LessonRow, 0, len(lessons))
	for _, l := range lessons {
		rows = append(rows, LessonRow{Rank: l.Rank, Name: l.Name, State: string(l.State)})
	}
	return LessonsData{CourseKey: domain.RecordKey(c.ID), CourseName: c.Name, Lessons: rows}
}

// NewUserData converts a user for the detail page.
func NewUserData(u *domain.User) UserData {
	row := newUserRow(*u)
	return UserData(row)
}
