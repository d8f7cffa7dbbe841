package auth

import (
	"context"
	"errors"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// AuthorizationService handles authorization decisions. Admin checks always
// resolve the current user row so a stale token cannot retain revoked
// privileges.
type AuthorizationService struct {
	userRepo repositories.IUserRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
	}
}

// RequireAdmin resolves the user and returns it if it holds the admin role
func (s *AuthorizationService) RequireAdmin(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error resolving user for admin check")
		return nil, err
	}

	if !user.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	return user, nil
}

// CanPostAnnouncements reports whether the user may post announcements.
// Admins always can; other users need the explicit flag.
func (s *AuthorizationService) CanPostAnnouncements(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin() || user.CanPostAnnouncements, nil
}
