package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserExists is returned when registering a taken username.
	ErrUserExists = errors.New("username already exists")
	// ErrInvalidCredentials is returned for an unknown user or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingFields is returned when username or password is empty.
	ErrMissingFields = errors.New("username and password required")
)

// Service registers and authenticates users.
type Service struct {
	repo   Repository
	logger *zap.Logger
	cost   int
}

// NewService creates a user service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger, cost: bcrypt.DefaultCost}
}

// Register creates a user with a hashed password. An empty role means RoleRep.
func (s *Service) Register(ctx context.Context, username, password, fullName, role string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	if role == "" {
		role = RoleRep
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{Username: username, PasswordHash: string(hash), FullName: fullName, Role: role}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("User registered", zap.String("username", username), zap.String("role", role))
	return u, nil
}

// Authenticate returns the user when the password matches.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// SeedAdmin creates the admin account unless it already exists.
func (s *Service) SeedAdmin(ctx context.Context, cfg Config) error {
	if !cfg.SeedAdmin {
		return nil
	}
	_, err := s.Register(ctx, cfg.AdminUsername, cfg.AdminPassword, "Administrator", RoleAdmin)
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	return err
}
