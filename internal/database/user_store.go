package database

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nfrund/courseboard/internal/domain"
)

// SessionDuration is how long a sign-in token stays valid.
const SessionDuration = 7 * 24 * time.Hour

const userFields = "* OMIT password"

// var _ ensures that UserStore implements the domain.UserRepository interface at compile time.
var _ domain.UserRepository = (*UserStore)(nil)

// UserStore implements domain.UserRepository on SurrealDB. Sessions are
// stored as records holding a random token, so the shared connection never
// switches to a record-user auth context.
type UserStore struct {
	users  Client[domain.User]
	writes Client[struct{}]
	now    func() time.Time
}

// NewUserStore creates a new user repository on top of a managed connection.
func NewUserStore(conn DBConnection) (*UserStore, error) {
	users, err := NewClient[domain.User](conn)
	if err != nil {
		return nil, err
	}
	writes, err := NewClient[struct{}](conn)
	if err != nil {
		return nil, err
	}
	return newUserStore(users, writes), nil
}

func newUserStore(users Client[domain.User], writes Client[struct{}]) *UserStore {
	return &UserStore{users: users, writes: writes, now: time.Now}
}

// CreateUser inserts a user with an argon2 password hash.
func (s *UserStore) CreateUser(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return nil, NewDBError(ErrInvalidInput, "email is required")
	}
	if password == "" {
		return nil, NewDBError(ErrInvalidInput, "password is required")
	}

	query := `
		CREATE user SET
			email = $email,
			name = $name,
			image = $image,
			password = crypto::argon2::generate($password)
		RETURN AFTER
	`
	params := map[string]any{
		"email":    strings.ToLower(strings.TrimSpace(user.Email)),
		"name":     user.Name,
		"image":    user.Image,
		"password": password,
	}

	created, err := s.users.QueryOne(ctx, query, params)
	if err != nil {
		if isDuplicateError(err) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, WrapError(err, "failed to create user")
	}
	if created == nil {
		return nil, NewDBError(ErrNotFound, "created user was not returned")
	}
	created.Password = ""
	return created, nil
}

// SignUp creates the user and opens a session for them.
func (s *UserStore) SignUp(ctx context.Context, user *domain.User, password string) (string, error) {
	created, err := s.CreateUser(ctx, user, password)
	if err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "Successfully signed up user", "email", created.Email)
	return s.createSession(ctx, created)
}

// SignIn checks the credentials and opens a session.
func (s *UserStore) SignIn(ctx context.Context, user *domain.User, password string) (string, error) {
	if user == nil || user.Email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	query := "SELECT " + userFields + " FROM user WHERE email = $email AND crypto::argon2::compare(password, $password)"
	params := map[string]any{
		"email":    strings.ToLower(strings.TrimSpace(user.Email)),
		"password": password,
	}
	found, err := s.users.QueryOne(ctx, query, params)
	if err != nil {
		return "", WrapError(err, "failed to look up credentials")
	}
	if found == nil {
		return "", domain.ErrInvalidCredentials
	}

	slog.InfoContext(ctx, "Successfully signed in user", "email", found.Email)
	return s.createSession(ctx, found)
}

// SignOut deletes the session identified by token.
func (s *UserStore) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.writes.Execute(ctx, "DELETE session WHERE token = $token", map[string]any{"token": token})
}

// Authenticate validates a session token and returns the associated user.
func (s *UserStore) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredentials
	}

	query := "SELECT " + userFields + ` FROM user WHERE id = (
		SELECT VALUE user FROM session
		WHERE token = $token AND type::datetime(expires_at) > time::now()
	)[0]`
	user, err := s.users.QueryOne(ctx, query, map[string]any{"token": token})
	if err != nil {
		return nil, WrapError(err, "failed to get authenticated user")
	}
	if user == nil || user.ID == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// FindUserByEmail retrieves a user by their email address, or (nil, nil).
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := "SELECT " + userFields + " FROM user WHERE email = $email"
	user, err := s.users.QueryOne(ctx, query, map[string]any{"email": strings.ToLower(strings.TrimSpace(email))})
	if err != nil {
		return nil, WrapError(err, "failed to find user by email")
	}
	return user, nil
}

// FindUserByID retrieves a user by the key part of its record id.
func (s *UserStore) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, NewDBError(ErrInvalidInput, "id cannot be empty")
	}
	query := "SELECT " + userFields + " FROM type::thing('user', $id)"
	user, err := s.users.QueryOne(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, WrapError(err, "failed to find user by id")
	}
	if user == nil {
		return nil, NewDBError(ErrNotFound, "user not found")
	}
	return user, nil
}

func (s *UserStore) createSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := generateSecureToken(32)
	if err != nil {
		return "", err
	}

	expires := s.now().UTC().Add(SessionDuration).Format(time.RFC3339)
	query := "CREATE session SET token = $token, user = $user, expires_at = $expires"
	params := map[string]any{
		"token":   token,
		"user":    user.ID,
		"expires": expires,
	}
	if err := s.writes.Execute(ctx, query, params); err != nil {
		return "", WrapError(err, "failed to create session")
	}
	return token, nil
}

// generateSecureToken creates a cryptographically secure random token.
func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

func isDuplicateError(err error) bool {
	if errors.Is(err, ErrAlreadyExists) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "already contains") || strings.Contains(msg, "already exists")
}
