package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/contest-tracker/internal/constants"
	"github.com/yukikurage/contest-tracker/internal/models"
	"github.com/yukikurage/contest-tracker/internal/policy"
	"github.com/yukikurage/contest-tracker/internal/repository"
	"github.com/yukikurage/contest-tracker/internal/security"
	"github.com/yukikurage/contest-tracker/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles accounts and token issuance.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is an authenticated user and their signed token.
type LoginResult struct {
	User  *models.User
	Token string
}

// UpdateProfileInput changes the display name and optionally the password.
type UpdateProfileInput struct {
	Name            string
	CurrentPassword string
	NewPassword     string
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	switch {
	case name == "":
		return nil, requiredField("name")
	case len(name) > constants.MaxNameLength:
		return nil, fmt.Errorf("name exceeds %d characters: %w", constants.MaxNameLength, ErrInvalidInput)
	case email == "":
		return nil, requiredField("email")
	case !utils.IsEmail(email):
		return nil, fmt.Errorf("email is not a valid address: %w", ErrInvalidInput)
	case len(input.Password) < constants.MinPasswordLength:
		return nil, ErrPasswordTooShort
	case len(input.Password) > constants.MaxPasswordLength:
		return nil, ErrPasswordTooLong
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a token for the user.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	if err := policy.RequireAuthenticated(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfile renames the user and, when both passwords are given,
// replaces the password after checking the current one.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, requiredField("name")
	}
	if len(name) > constants.MaxNameLength {
		return nil, fmt.Errorf("name exceeds %d characters: %w", constants.MaxNameLength, ErrInvalidInput)
	}
	user.Name = name

	if input.CurrentPassword != "" && input.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
			return nil, ErrIncorrectPassword
		}
		if len(input.NewPassword) < constants.MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		if len(input.NewPassword) > constants.MaxPasswordLength {
			return nil, ErrPasswordTooLong
		}

		hash, err := hashPassword(input.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
