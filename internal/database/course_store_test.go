package database

import (
	"context"
	"testing"

	"github.com/nfrund/courseboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

type courseStoreFixture struct {
	store   *CourseStore
	courses *scriptedExecutor[domain.Course]
	users   *scriptedExecutor[domain.User]
	counts  *scriptedExecutor[countRow]
	writes  *scriptedExecutor[struct{}]
}

func newCourseStoreFixture() *courseStoreFixture {
	f := &courseStoreFixture{
		courses: &scriptedExecutor[domain.Course]{},
		users:   &scriptedExecutor[domain.User]{},
		counts:  &scriptedExecutor[countRow]{},
		writes:  &scriptedExecutor[struct{}]{},
	}
	f.store = &CourseStore{
		courses:   mustClient[domain.Course](f.courses),
		summaries: mustClient[domain.CourseSummary](&scriptedExecutor[domain.CourseSummary]{}),
		users:     mustClient[domain.User](f.users),
		lessons:   mustClient[domain.Lesson](&scriptedExecutor[domain.Lesson]{}),
		counts:    mustClient[countRow](f.counts),
		writes:    mustClient[struct{}](f.writes),
	}
	return f
}

func recordID(table, key string) *surrealmodels.RecordID {
	id := surrealmodels.NewRecordID(table, key)
	return &id
}

func TestCourseStore_GetCourse(t *testing.T) {
	ctx := context.Background()
	course := domain.Course{
		ID:        recordID("course", "go101"),
		Name:      "Go 101",
		State:     domain.CoursePublished,
		CreatorID: recordID("user", "alice"),
	}

	t.Run("first page when page is below one", func(t *testing.T) {
		f := newCourseStoreFixture()
		f.courses.push([]domain.Course{course}, nil)
		f.counts.push([]countRow{{Count: 7}}, nil).push([]countRow{{Count: 3}}, nil)
		f.users.push([]domain.User{{Email: "a@example.com"}, {Email: "b@example.com"}}, nil)

		detail, err := f.store.GetCourse(ctx, domain.CourseQuery{CourseID: "go101", UserID: "alice", UserPage: 0})
		require.NoError(t, err)

		assert.Equal(t, "Go 101", detail.Name)
		assert.Equal(t, 1, detail.Page)
		assert.Equal(t, 2, detail.TotalPages)
		assert.Equal(t, domain.CourseCounts{Users: 7, Lessons: 3}, detail.Counts)
		assert.Len(t, detail.Users, 2)
		assert.False(t, detail.HasPrevPage())
		assert.True(t, detail.HasNextPage())

		calls := f.users.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, 0, calls[0].Params["start"])
		assert.Equal(t, domain.CourseUsersPageSize, calls[0].Params["limit"])
	})

	t.Run("later pages skip earlier users", func(t *testing.T) {
		f := newCourseStoreFixture()
		f.courses.push([]domain.Course{course}, nil)
		f.counts.push([]countRow{{Count: 12}}, nil).push(nil, nil)

		detail, err := f.store.GetCourse(ctx, domain.CourseQuery{CourseID: "go101", UserID: "alice", UserPage: 3})
		require.NoError(t, err)

		assert.Equal(t, 3, detail.Page)
		assert.Equal(t, 3, detail.TotalPages)
		assert.Equal(t, 0, detail.Counts.Lessons)
		assert.Empty(t, detail.Users)
		assert.Equal(t, 10, f.users.Calls()[0].Params["start"])
	})

	t.Run("huge pages keep a non-negative offset", func(t *testing.T) {
		f := newCourseStoreFixture()
		f.courses.push([]domain.Course{course}, nil)
		f.counts.push([]countRow{{Count: 7}}, nil).push(nil, nil)

		detail, err := f.store.GetCourse(ctx, domain.CourseQuery{CourseID: "go101", UserID: "alice", UserPage: 2000000000000000000})
		require.NoError(t, err)
		assert.Equal(t, domain.MaxUserPage, detail.Page)
		assert.False(t, detail.HasNextPage())

		start, ok := f.users.Calls()[0].Params["start"].(int)
		require.True(t, ok)
		assert.GreaterOrEqual(t, start, 0)
		assert.Equal(t, (domain.MaxUserPage-1)*domain.CourseUsersPageSize, start)
	})

	t.Run("ownership is part of the lookup", func(t *testing.T) {
		f := newCourseStoreFixture()
		f.courses.push([]domain.Course{course}, nil)

		_, err := f.store.GetCourse(ctx, domain.CourseQuery{CourseID: "go101", UserID: "alice"})
		require.NoError(t, err)

		call := f.courses.Calls()[0]
		assert.Contains(t, call.Query, "WHERE creator = type::thing($user_table, $user_id)")
		assert.Equal(t, "go101", call.Params["course_id"])
		assert.Equal(t, "alice", call.Params["user_id"])
	})

	t.Run("missing course is not found", func(t *testing.T) {
		f := newCourseStoreFixture()

		_, err := f.store.GetCourse(ctx, domain.CourseQuery{CourseID: "nope", UserID: "alice"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, f.counts.Calls())
		assert.Empty(t, f.users.Calls())
	})

	t.Run("empty ids are rejected", func(t *testing.T) {
		f := newCourseStoreFixture()

		_, err := f.store.GetCourse(ctx, domain.CourseQuery{CourseID: "go101"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, f.courses.Calls())
	})
}

func TestCourseStore_UpdateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid course never reaches the database", func(t *testing.T) {
		f := newCourseStoreFixture()
		_, err := f.store.UpdateCourse(ctx, &domain.Course{
			ID:        recordID("course", "go101"),
			CreatorID: recordID("user", "alice"),
			Name:      "Go",
			State:     domain.CourseDraft,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, f.courses.Calls())
	})

	t.Run("no row back means the creator did not match", func(t *testing.T) {
		f := newCourseStoreFixture()
		_, err := f.store.UpdateCourse(ctx, &domain.Course{
			ID:        recordID("course", "go101"),
			CreatorID: recordID("user", "mallory"),
			Name:      "Go 101",
			State:     domain.CourseDraft,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		call := f.courses.Calls()[0]
		assert.Contains(t, call.Query, "WHERE creator = $creator")
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 5, 3},
		{3, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, totalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}
