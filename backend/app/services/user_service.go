package services

import (
	"board-guard/backend/app/dto"
	"board-guard/backend/app/models"
	"board-guard/backend/app/repo"
	"board-guard/backend/global"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// EnsureAdmin creates an admin account unless the username is already taken.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	count, err := s.users.CountByUsername(ctx, normalizeUsername(username))
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.Create(ctx, dto.SignupRequest{Username: username, Password: password, Role: models.RoleAdmin})
	return err
}

// Create stores a new user with a bcrypt hash of the password. bcrypt salts every hash.
func (s *UserService) Create(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	username := normalizeUsername(req.Username)
	if username == "" || req.Password == "" {
		return nil, newError(ErrInvalidInput, "username and password are required")
	}
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, newError(ErrInvalidInput, "unknown role %q", role)
	}

	count, err := s.users.CountByUsername(ctx, username)
	if err != nil {
		global.Logger.Error().Err(err).Str("username", username).Msg("failed to check username")
		return nil, err
	}
	if count > 0 {
		return nil, newError(ErrConflict, "username %s already exists", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{Username: username, PasswordHash: string(hash), Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		if isDuplicateKey(err) {
			return nil, newError(ErrConflict, "username %s already exists", username)
		}
		global.Logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		return nil, err
	}
	return u, nil
}

// FindOne looks a user up by name, trimmed the same way Create stores it.
func (s *UserService) FindOne(ctx context.Context, username string) (*models.User, error) {
	username = normalizeUsername(username)
	u, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(ErrNotFound, "user with username %s not found", username)
	}
	if err != nil {
		global.Logger.Error().Err(err).Str("username", username).Msg("failed to find user")
		return nil, err
	}
	return u, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.users.ListAll(ctx)
}

// ValidateCredentials hides whether the username or the password was wrong.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.FindOne(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func normalizeUsername(name string) string { return strings.TrimSpace(name) }
