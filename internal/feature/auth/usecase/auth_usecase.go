// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"salon_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to storage.
	// It returns ErrEmailTaken if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// It returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenGenerator defines the interface for signed token issuance.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken creates a signed, time-limited token for the given user.
	GenerateToken(userID, email string) (string, error)
}

// PublicUser is the projection of a user returned to callers.
// It deliberately has no password field.
type PublicUser struct {
	ID    string
	Email string
	Name  string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users     UserRepository
	generator TokenGenerator
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, generator TokenGenerator) *authUsecase {
	return &authUsecase{
		users:     users,
		generator: generator,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns the
// public projection. An email already present in the store fails with
// ErrEmailTaken before anything is written.
func (u *authUsecase) Register(ctx context.Context, email, password, name string) (*PublicUser, error) {
	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: string(hashed), Name: name}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &PublicUser{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Login authenticates a user and returns a signed JWT on success.
// Unknown email and wrong password both yield ErrInvalidCredentials.
// To mitigate timing attacks, bcrypt comparison runs even when the user
// does not exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	// Dummy hash so that bcrypt.CompareHashAndPassword is always executed
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// Same error for "no such user" and "wrong password"
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.generator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
