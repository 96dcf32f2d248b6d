package domain

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// CourseState controls whether a course is listed in the explorer.
type CourseState string

const (
	CourseDraft     CourseState = "draft"
	CoursePublished CourseState = "published"
)

// LessonState controls who can read a lesson.
type LessonState string

const (
	LessonHidden    LessonState = "hidden"
	LessonPublic    LessonState = "public"
	LessonPublished LessonState = "published"
)

// CourseUsersPageSize is the number of enrolled users shown per page on the
// admin course page.
const CourseUsersPageSize = 5

// MaxUserPage is the highest user page whose offset still fits in an int.
const MaxUserPage = math.MaxInt / CourseUsersPageSize

// Course is a course as stored in the database.
type Course struct {
	ID           *surrealmodels.RecordID `json:"id,omitempty"`
	Name         string                  `json:"name" validate:"required,min=3,max=120"`
	Image        *string                 `json:"image,omitempty"`
	Presentation string                  `json:"presentation" validate:"max=5000"`
	State        CourseState             `json:"state" validate:"required,oneof=draft published"`
	CreatorID    *surrealmodels.RecordID `json:"creator,omitempty"`
}

// Validate runs validation checks on the Course struct using the defined tags.
func (c *Course) Validate() error {
	return validatorInstance.Struct(c)
}

// Lesson belongs to a course and is ordered by Rank.
type Lesson struct {
	ID       *surrealmodels.RecordID `json:"id,omitempty"`
	CourseID *surrealmodels.RecordID `json:"course,omitempty"`
	Name     string                  `json:"name"`
	Rank     string                  `json:"rank"`
	State    LessonState             `json:"state"`
}

// CourseCounts carries the number of related records for a course.
type CourseCounts struct {
	Users   int `json:"users"`
	Lessons int `json:"lessons"`
}

// CourseSummary is a course plus its counts, used in listings.
type CourseSummary struct {
	Course
	Counts CourseCounts `json:"_count"`
}

// CourseDetail is the view model for the admin course page: the course, one
// page of its enrolled users and the related counts.
type CourseDetail struct {
	Course
	Users      []User       `json:"users"`
	Counts     CourseCounts `json:"_count"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
}

// HasPrevPage reports whether a page before the current one exists.
func (d *CourseDetail) HasPrevPage() bool { return d.Page > 1 }

// HasNextPage reports whether a page after the current one exists.
func (d *CourseDetail) HasNextPage() bool { return d.Page < d.TotalPages }

// CourseQuery holds the arguments of the course detail lookup.
type CourseQuery struct {
	CourseID string
	UserID   string
	UserPage int
}

// CourseRepository defines the contract for course data storage operations.
type CourseRepository interface {
	// GetCourse returns the course owned by q.UserID with one page of users.
	// It returns ErrNotFound if the course does not exist or belongs to someone else.
	GetCourse(ctx context.Context, q CourseQuery) (*CourseDetail, error)
	// GetOwnedCourse returns a course without users, scoped to its creator.
	GetOwnedCourse(ctx context.Context, courseID, userID string) (*Course, error)
	ListByCreator(ctx context.Context, userID string) ([]CourseSummary, error)
	ListPublished(ctx context.Context) ([]CourseSummary, error)
	ListForUser(ctx context.Context, userID string) ([]CourseSummary, error)
	ListLessons(ctx context.Context, courseID, userID string) ([]Lesson, error)
	UpdateCourse(ctx context.Context, course *Course) (*Course, error)
}
