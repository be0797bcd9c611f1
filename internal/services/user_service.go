package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
	"github.com/pagenote/pagenote-be/internal/apperror"
	"github.com/pagenote/pagenote-be/internal/auth"
	"github.com/pagenote/pagenote-be/internal/models"
)

// ErrUserNotFound is returned by FindByUsername when no row matches.
var ErrUserNotFound = errors.New("user not found")

// UserServiceProvider defines the interface for credential storage.
type UserServiceProvider interface {
	Create(ctx context.Context, username, password string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// UserService persists user accounts and verifies credentials.
type UserService struct {
	db     *sql.DB
	hasher auth.PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, hasher auth.PasswordHasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

// Create stores a new user with a salted password hash. A taken username
// fails with a conflict; the unique index keeps the failure atomic.
func (s *UserService) Create(ctx context.Context, username, password string) (models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, apperror.NewStoreError("failed to hash password", err)
	}

	_, err = s.db.ExecContext(ctx, "INSERT INTO users(username, password_hash) VALUES(?, ?)", username, hash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, apperror.NewConflictError("username already exists")
		}
		return models.User{}, apperror.NewStoreError("failed to create user", err)
	}

	user, err := s.FindByUsername(ctx, username)
	if err != nil {
		return models.User{}, apperror.NewStoreError("failed to load created user", err)
	}

	// Callers get the user without the hash.
	user.PasswordHash = ""
	return user, nil
}

// FindByUsername retrieves a user by exact, case-sensitive username,
// including the password hash.
func (s *UserService) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, apperror.NewStoreError("failed to query user", err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords produce the same unauthenticated outcome.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return models.User{}, apperror.NewUnauthenticatedError("invalid credentials", nil)
		}
		return models.User{}, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return models.User{}, apperror.NewUnauthenticatedError("invalid credentials", nil)
	}

	user.PasswordHash = ""
	return user, nil
}
