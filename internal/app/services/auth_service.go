package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/auth"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
	"github.com/dayotunde25/bsf/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new member account and returns a token pair
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Role:      models.RoleAlumni,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}
	if req.AttendanceYears != "" {
		user.AttendanceYears = &req.AttendanceYears
	}
	if req.Department != "" {
		user.Department = &req.Department
	}
	if req.AcademicLevel != "" {
		user.AcademicLevel = &req.AcademicLevel
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Str("email", email).Msg("User registered")

	return s.buildAuthResponse(user)
}

// Login authenticates a member and returns a token pair
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Same error as a bad password so the response doesn't leak
			// which emails are registered
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return s.buildAuthResponse(user)
}

// GetCurrentUser retrieves the profile of the authenticated user
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.ToUserResponse(user),
	}, nil
}
