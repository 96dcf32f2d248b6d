// Package seed fills an empty database with a demo course.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nfrund/courseboard/internal/domain"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Users is the part of the user store the seeder needs.
type Users interface {
	CreateUser(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Courses is the part of the course store the seeder needs.
type Courses interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	AddUser(ctx context.Context, courseID, userID *surrealmodels.RecordID) error
	CreateLesson(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
}

type Options struct {
	OwnerEmail string
	Password   string
	Learners   int
	Lessons    int
}

// DefaultOptions seed enough learners to fill three pages of the admin
// course page.
func DefaultOptions() Options {
	return Options{
		OwnerEmail: "owner@courseboard.dev",
		Password:   "password123",
		Learners:   12,
		Lessons:    4,
	}
}

type Result struct {
	Owner    *domain.User
	Course   *domain.Course
	Learners int
	Lessons  int
}

// Run creates the owner, one published course, its lessons and its
// learners. Existing users are reused so it can run more than once.
func Run(ctx context.Context, users Users, courses Courses, opts Options) (*Result, error) {
	if opts.OwnerEmail == "" || opts.Password == "" {
		return nil, errors.New("seed: owner email and password are required")
	}

	owner, err := ensureUser(ctx, users, opts.OwnerEmail, "Course Owner", opts.Password)
	if err != nil {
		return nil, err
	}

	course, err := courses.Create(ctx, &domain.Course{
		Name:         "Go in practice",
		Presentation: "Build and ship a web application with Go, from the first handler to production.",
		State:        domain.CoursePublished,
		CreatorID:    owner.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("seed: create course: %w", err)
	}

	res := &Result{Owner: owner, Course: course}

	for i := 1; i <= opts.Lessons; i++ {
		state := domain.LessonPublished
		if i == opts.Lessons {
			state = domain.LessonHidden
		}
		if _, err := courses.CreateLesson(ctx, &domain.Lesson{
			CourseID: course.ID,
			Name:     fmt.Sprintf("Lesson %d", i),
			Rank:     fmt.Sprintf("%04d", i),
			State:    state,
		}); err != nil {
			return nil, fmt.Errorf("seed: create lesson %d: %w", i, err)
		}
		res.Lessons++
	}

	for i := 1; i <= opts.Learners; i++ {
		email := fmt.Sprintf("learner%02d@courseboard.dev", i)
		learner, err := ensureUser(ctx, users, email, fmt.Sprintf("Learner %d", i), opts.Password)
		if err != nil {
			return nil, err
		}
		if err := courses.AddUser(ctx, course.ID, learner.ID); err != nil {
			return nil, fmt.Errorf("seed: enrol %s: %w", email, err)
		}
		res.Learners++
	}

	slog.InfoContext(ctx, "Seeded demo course",
		"course_id", course.ID.String(), "lessons", res.Lessons, "learners", res.Learners)
	return res, nil
}

func ensureUser(ctx context.Context, users Users, email, name, password string) (*domain.User, error) {
	user, err := users.CreateUser(ctx, &domain.User{Email: email, Name: &name}, password)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		return nil, fmt.Errorf("seed: create user %s: %w", email, err)
	}

	user, err = users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("seed: find user %s: %w", email, err)
	}
	if user == nil {
		return nil, fmt.Errorf("seed: user %s exists but could not be loaded", email)
	}
	return user, nil
}
