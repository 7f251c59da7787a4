// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/avdeyev/studykeep/internal/config"
	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/store"
	"github.com/avdeyev/studykeep/internal/utils"
	"github.com/avdeyev/studykeep/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 80
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type authService struct {
	authConfigs config.Auth
	users       store.UserRepository
	logger      *logger.Logger
}

// NewAuthService constructs an [AuthService] backed by the given user
// repository.
func NewAuthService(authConfigs config.Auth, users store.UserRepository, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")

	return &authService{
		authConfigs: authConfigs,
		users:       users,
		logger:      logger,
	}
}

// Register validates the signup request, hashes the password and stores the
// new user. Returns [ErrEmailTaken] when the email is already registered.
func (s *authService) Register(ctx context.Context, request *models.RegisterRequest) (*models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegisterRequest(request); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Username:     strings.TrimSpace(request.Username),
		Email:        normalizeEmail(request.Email),
		PasswordHash: string(passwordHash),
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return &created, nil
}

// Login verifies the given credentials against the stored password hash.
// An unknown email and a wrong password both return [ErrInvalidCredentials].
func (s *authService) Login(ctx context.Context, request *models.LoginRequest) (*models.User, error) {
	if request == nil || request.Email == "" || request.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// CreateToken issues a signed JWT for the given user.
func (s *authService) CreateToken(user *models.User) (*models.Token, error) {
	token, err := utils.GenerateJWTToken(
		s.authConfigs.TokenIssuer,
		user.UserID,
		s.authConfigs.TokenDuration,
		s.authConfigs.TokenSignKey,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating token: %w", err)
	}

	return &token, nil
}

// ParseToken verifies a compact JWT string and returns the user ID from its
// subject claim. Any verification failure maps to [ErrInvalidAuthToken].
func (s *authService) ParseToken(tokenString string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.authConfigs.TokenSignKey, s.authConfigs.TokenIssuer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAuthToken, err)
	}

	return token.UserID, nil
}

func validateRegisterRequest(request *models.RegisterRequest) error {
	if request == nil {
		return fmt.Errorf("%w: empty request", ErrValidation)
	}

	username := strings.TrimSpace(request.Username)
	if length := utf8.RuneCountInString(username); length < minUsernameLength || length > maxUsernameLength {
		return fmt.Errorf("%w: username must be between %d and %d characters",
			ErrValidation, minUsernameLength, maxUsernameLength)
	}

	if !emailPattern.MatchString(normalizeEmail(request.Email)) {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	if len(request.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	if request.Password != request.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
