package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestCourse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		course  Course
		wantErr bool
	}{
		{name: "valid draft", course: Course{Name: "Go basics", State: CourseDraft}},
		{name: "valid published", course: Course{Name: "Go basics", State: CoursePublished}},
		{name: "name too short", course: Course{Name: "Go", State: CourseDraft}, wantErr: true},
		{name: "missing state", course: Course{Name: "Go basics"}, wantErr: true},
		{name: "unknown state", course: Course{Name: "Go basics", State: "archived"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCourseDetail_Pages(t *testing.T) {
	first := CourseDetail{Page: 1, TotalPages: 3}
	assert.False(t, first.HasPrevPage())
	assert.True(t, first.HasNextPage())

	last := CourseDetail{Page: 3, TotalPages: 3}
	assert.True(t, last.HasPrevPage())
	assert.False(t, last.HasNextPage())
}

func TestRecordKey(t *testing.T) {
	id := surrealmodels.NewRecordID("user", "abc123")
	assert.Equal(t, "abc123", RecordKey(&id))
	assert.Equal(t, "", RecordKey(nil))
}

func TestUser_DisplayName(t *testing.T) {
	name := "Ada"
	assert.Equal(t, "Ada", (&User{Name: &name}).DisplayName())
	assert.Equal(t, "", (&User{}).DisplayName())
	var nilUser *User
	assert.Equal(t, "", nilUser.DisplayName())
}
