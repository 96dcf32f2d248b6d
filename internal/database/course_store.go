package database

import (
	"context"
	"log/slog"

	"github.com/nfrund/courseboard/internal/domain"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

const (
	courseTable = "course"
	userTable   = "user"
)

// summaryFields projects a course together with its related counts.
const summaryFields = `*, {
	users: count((SELECT id FROM course_on_user WHERE course = $parent.id)),
	lessons: count((SELECT id FROM lesson WHERE course = $parent.id))
} AS _count`

var _ domain.CourseRepository = (*CourseStore)(nil)

type countRow struct {
	Count int `json:"count"`
}

// CourseStore implements domain.CourseRepository on SurrealDB.
type CourseStore struct {
	courses   Client[domain.Course]
	summaries Client[domain.CourseSummary]
	users     Client[domain.User]
	lessons   Client[domain.Lesson]
	counts    Client[countRow]
	writes    Client[struct{}]
}

// NewCourseStore creates a course repository on top of a managed connection.
func NewCourseStore(conn DBConnection) (*CourseStore, error) {
	courses, err := NewClient[domain.Course](conn)
	if err != nil {
		return nil, err
	}
	summaries, err := NewClient[domain.CourseSummary](conn)
	if err != nil {
		return nil, err
	}
	users, err := NewClient[domain.User](conn)
	if err != nil {
		return nil, err
	}
	lessons, err := NewClient[domain.Lesson](conn)
	if err != nil {
		return nil, err
	}
	counts, err := NewClient[countRow](conn)
	if err != nil {
		return nil, err
	}
	writes, err := NewClient[struct{}](conn)
	if err != nil {
		return nil, err
	}
	return &CourseStore{
		courses:   courses,
		summaries: summaries,
		users:     users,
		lessons:   lessons,
		counts:    counts,
		writes:    writes,
	}, nil
}

// GetCourse loads a course owned by q.UserID with one page of its users.
// Pages are 1-based; anything below 1 is treated as the first page and
// pages past domain.MaxUserPage are clamped to it.
func (s *CourseStore) GetCourse(ctx context.Context, q domain.CourseQuery) (*domain.CourseDetail, error) {
	course, err := s.GetOwnedCourse(ctx, q.CourseID, q.UserID)
	if err != nil {
		return nil, err
	}

	page := q.UserPage
	if page < 1 {
		page = 1
	}
	if page > domain.MaxUserPage {
		page = domain.MaxUserPage
	}

	courseParams := map[string]any{"course": course.ID}

	userCount, err := s.count(ctx, "SELECT count() FROM course_on_user WHERE course = $course GROUP ALL", courseParams)
	if err != nil {
		return nil, WrapError(err, "failed to count course users")
	}
	lessonCount, err := s.count(ctx, "SELECT count() FROM lesson WHERE course = $course GROUP ALL", courseParams)
	if err != nil {
		return nil, WrapError(err, "failed to count course lessons")
	}

	usersQuery := "SELECT " + userFields + ` FROM user
		WHERE id IN (SELECT VALUE user FROM course_on_user WHERE course = $course)
		ORDER BY email ASC
		LIMIT $limit START $start`
	users, err := s.users.Query(ctx, usersQuery, map[string]any{
		"course": course.ID,
		"limit":  domain.CourseUsersPageSize,
		"start":  (page - 1) * domain.CourseUsersPageSize,
	})
	if err != nil {
		return nil, WrapError(err, "failed to load course users")
	}

	detail := &domain.CourseDetail{
		Course:     *course,
		Users:      users,
		Counts:     domain.CourseCounts{Users: userCount, Lessons: lessonCount},
		Page:       page,
		TotalPages: totalPages(userCount, domain.CourseUsersPageSize),
	}

	slog.DebugContext(ctx, "Loaded course detail",
		"course_id", course.ID.String(), "page", page, "users_on_page", len(users))
	return detail, nil
}

// GetOwnedCourse returns the course if it exists and was created by userID.
func (s *CourseStore) GetOwnedCourse(ctx context.Context, courseID, userID string) (*domain.Course, error) {
	if courseID == "" || userID == "" {
		return nil, NewDBError(ErrInvalidInput, "course id and user id are required")
	}

	query := "SELECT * FROM type::thing($course_table, $course_id) WHERE creator = type::thing($user_table, $user_id)"
	course, err := s.courses.QueryOne(ctx, query, map[string]any{
		"course_table": courseTable,
		"course_id":    courseID,
		"user_table":   userTable,
		"user_id":      userID,
	})
	if err != nil {
		return nil, WrapError(err, "failed to load course")
	}
	if course == nil || course.ID == nil {
		return nil, NewDBError(ErrNotFound, "course not found")
	}
	return course, nil
}

// ListByCreator returns the courses created by userID, ordered by name.
func (s *CourseStore) ListByCreator(ctx context.Context, userID string) ([]domain.CourseSummary, error) {
	query := "SELECT " + summaryFields + " FROM course WHERE creator = type::thing($user_table, $user_id) ORDER BY name ASC"
	courses, err := s.summaries.Query(ctx, query, map[string]any{"user_table": userTable, "user_id": userID})
	if err != nil {
		return nil, WrapError(err, "failed to list courses by creator")
	}
	return courses, nil
}

// ListPublished returns every published course, ordered by name.
func (s *CourseStore) ListPublished(ctx context.Context) ([]domain.CourseSummary, error) {
	query := "SELECT " + summaryFields + " FROM course WHERE state = $state ORDER BY name ASC"
	courses, err := s.summaries.Query(ctx, query, map[string]any{"state": domain.CoursePublished})
	if err != nil {
		return nil, WrapError(err, "failed to list published courses")
	}
	return courses, nil
}

// ListForUser returns the courses userID has joined.
func (s *CourseStore) ListForUser(ctx context.Context, userID string) ([]domain.CourseSummary, error) {
	query := "SELECT " + summaryFields + ` FROM course
		WHERE id IN (SELECT VALUE course FROM course_on_user WHERE user = type::thing($user_table, $user_id))
		ORDER BY name ASC`
	courses, err := s.summaries.Query(ctx, query, map[string]any{"user_table": userTable, "user_id": userID})
	if err != nil {
		return nil, WrapError(err, "failed to list courses for user")
	}
	return courses, nil
}

// ListLessons returns the lessons of a course owned by userID, ordered by rank.
func (s *CourseStore) ListLessons(ctx context.Context, courseID, userID string) ([]domain.Lesson, error) {
	course, err := s.GetOwnedCourse(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}
	lessons, err := s.lessons.Query(ctx, "SELECT * FROM lesson WHERE course = $course ORDER BY rank ASC", map[string]any{"course": course.ID})
	if err != nil {
		return nil, WrapError(err, "failed to list lessons")
	}
	return lessons, nil
}

// UpdateCourse merges the editable fields into the stored course. The update
// only applies when the creator matches.
func (s *CourseStore) UpdateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if course == nil || course.ID == nil || course.CreatorID == nil {
		return nil, NewDBError(ErrInvalidInput, "course, course id and creator are required for update")
	}
	if err := course.Validate(); err != nil {
		return nil, NewDBError(ErrInvalidInput, err.Error())
	}

	query := "UPDATE $id MERGE $data WHERE creator = $creator RETURN AFTER"
	updated, err := s.courses.QueryOne(ctx, query, map[string]any{
		"id":      course.ID,
		"creator": course.CreatorID,
		"data": map[string]any{
			"name":         course.Name,
			"image":        course.Image,
			"presentation": course.Presentation,
			"state":        course.State,
		},
	})
	if err != nil {
		return nil, WrapError(err, "failed to update course")
	}
	if updated == nil {
		return nil, NewDBError(ErrNotFound, "course not found")
	}
	return updated, nil
}

// Create inserts a course. Used by the seed command.
func (s *CourseStore) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if course == nil || course.CreatorID == nil {
		return nil, NewDBError(ErrInvalidInput, "course and creator are required")
	}
	if err := course.Validate(); err != nil {
		return nil, NewDBError(ErrInvalidInput, err.Error())
	}

	query := "CREATE course CONTENT $data RETURN AFTER"
	created, err := s.courses.QueryOne(ctx, query, map[string]any{
		"data": map[string]any{
			"name":         course.Name,
			"image":        course.Image,
			"presentation": course.Presentation,
			"state":        course.State,
			"creator":      course.CreatorID,
		},
	})
	if err != nil {
		return nil, WrapError(err, "failed to create course")
	}
	if created == nil {
		return nil, NewDBError(ErrNotFound, "created course was not returned")
	}
	return created, nil
}

// AddUser enrols a user in a course. Enrolling twice is a no-op.
func (s *CourseStore) AddUser(ctx context.Context, courseID, userID *surrealmodels.RecordID) error {
	query := `
		IF (SELECT id FROM course_on_user WHERE course = $course AND user = $user) = [] {
			CREATE course_on_user SET course = $course, user = $user, created_at = time::now();
		};
	`
	if err := s.writes.Execute(ctx, query, map[string]any{"course": courseID, "user": userID}); err != nil {
		return WrapError(err, "failed to add user to course")
	}
	return nil
}

// CreateLesson inserts a lesson for a course. Used by the seed command.
func (s *CourseStore) CreateLesson(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	if lesson == nil || lesson.CourseID == nil || lesson.Name == "" {
		return nil, NewDBError(ErrInvalidInput, "lesson name and course are required")
	}
	created, err := s.lessons.QueryOne(ctx, "CREATE lesson CONTENT $data RETURN AFTER", map[string]any{
		"data": map[string]any{
			"course": lesson.CourseID,
			"name":   lesson.Name,
			"rank":   lesson.Rank,
			"state":  lesson.State,
		},
	})
	if err != nil {
		return nil, WrapError(err, "failed to create lesson")
	}
	return created, nil
}

func (s *CourseStore) count(ctx context.Context, query string, params map[string]any) (int, error) {
	row, err := s.counts.QueryOne(ctx, query, params)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return row.Count, nil
}

// totalPages never returns less than one so an empty course still has a page.
func totalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}
