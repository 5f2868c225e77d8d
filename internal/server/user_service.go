package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/db"
)

// UserStore is the subset of database operations the auth layer needs.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
}

// UserService handles account registration and login.
type UserService struct {
	store     UserStore
	passwords *config.PasswordConfig
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, passwords *config.PasswordConfig) *UserService {
	return &UserService{store: store, passwords: passwords}
}

// Register creates a new account. Returns ErrEmailAlreadyExists if the email
// is taken.
func (s *UserService) Register(ctx context.Context, email, password string) (*db.User, error) {
	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return nil, err
	}

	id, err := s.store.CreateUser(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s missing after create", id)
	}
	return user, nil
}

// Login verifies credentials. Returns ErrInvalidCredentials on any mismatch
// so callers cannot distinguish a wrong password from an unknown email.
func (s *UserService) Login(ctx context.Context, email, password string) (*db.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwords.VerifyPassword(password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return user, nil
}
