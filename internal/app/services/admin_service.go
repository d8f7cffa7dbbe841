package services

import (
	"context"
	"fmt"

	"github.com/dayotunde25/bsf/internal/app/auth"
	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/helpers"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
)

// AdminService defines the interface for the admin console: role changes,
// post assignments, audit views and user filtering. Every operation
// re-resolves the caller's user row before acting; token claims alone are
// never trusted for admin access.
type AdminService interface {
	UpdateUserRole(ctx context.Context, adminID, userID int64, req *dto.UpdateUserRoleRequest) error
	BulkUpdateRoles(ctx context.Context, adminID int64, req *dto.BulkUpdateRolesRequest) (*dto.BulkUpdateResult, error)
	AssignPost(ctx context.Context, adminID, userID int64, req *dto.AssignPostRequest) error
	GetUserHistory(ctx context.Context, adminID, userID int64) (*dto.UserHistoryResponse, error)
	FilterUsers(ctx context.Context, adminID int64, filter *dto.UserFilterRequest) ([]*models.User, error)
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	userRepo     repositories.IUserRepository
	postRepo     repositories.IPostRepository
	auditRepo    repositories.IAuditRepository
	authzService *auth.AuthorizationService
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	userRepo repositories.IUserRepository,
	postRepo repositories.IPostRepository,
	auditRepo repositories.IAuditRepository,
	authzService *auth.AuthorizationService,
) AdminService {
	return &adminServiceImpl{
		userRepo:     userRepo,
		postRepo:     postRepo,
		auditRepo:    auditRepo,
		authzService: authzService,
	}
}

// UpdateUserRole changes a user's role. The role update and its history row
// are written in one transaction by the repository.
func (s *adminServiceImpl) UpdateUserRole(ctx context.Context, adminID, userID int64, req *dto.UpdateUserRoleRequest) error {
	admin, err := s.authzService.RequireAdmin(ctx, adminID)
	if err != nil {
		return err
	}

	newRole := models.Role(req.Role)
	if !newRole.IsValid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	}

	err = s.userRepo.UpdateRoleWithHistory(ctx, userID, newRole, req.CanPostAnnouncements, req.Reason, admin.ID)
	if err != nil {
		return err
	}

	logger.Info().Int64("userID", userID).Str("newRole", req.Role).
		Int64("changedBy", admin.ID).Msg("User role updated")
	return nil
}

// BulkUpdateRoles applies role changes per item: a failing entry never aborts
// the rest, and every failure appears in the returned summary.
func (s *adminServiceImpl) BulkUpdateRoles(ctx context.Context, adminID int64, req *dto.BulkUpdateRolesRequest) (*dto.BulkUpdateResult, error) {
	admin, err := s.authzService.RequireAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	result := &dto.BulkUpdateResult{}
	for _, item := range req.Updates {
		newRole := models.Role(item.Role)
		if !newRole.IsValid() {
			result.Failed++
			result.Failures = append(result.Failures, dto.BulkUpdateFailure{
				UserID: item.UserID,
				Error:  fmt.Sprintf("unknown role %q", item.Role),
			})
			continue
		}

		err := s.userRepo.UpdateRoleWithHistory(ctx, item.UserID, newRole, item.CanPostAnnouncements, req.Reason, admin.ID)
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, dto.BulkUpdateFailure{
				UserID: item.UserID,
				Error:  err.Error(),
			})
			continue
		}
		result.Updated++
	}

	err = s.auditRepo.LogActivity(ctx, admin.ID, "bulk_role_update",
		fmt.Sprintf("bulk role update: %d updated, %d failed", result.Updated, result.Failed),
		map[string]interface{}{"updated": result.Updated, "failed": result.Failed})
	if err != nil {
		return nil, fmt.Errorf("error recording bulk role update activity: %w", err)
	}

	return result, nil
}

// AssignPost records a fellowship post assignment for a user. The post kind
// selects the target table and its required title field. The optional
// academic-info update, the post row and the activity log entry are written
// by the repository in one transaction.
func (s *adminServiceImpl) AssignPost(ctx context.Context, adminID, userID int64, req *dto.AssignPostRequest) error {
	admin, err := s.authzService.RequireAdmin(ctx, adminID)
	if err != nil {
		return err
	}

	postType := models.PostType(req.PostType)
	if !postType.IsValid() {
		return fmt.Errorf("%w: unknown post type %q", apperrors.ErrValidationFailed, req.PostType)
	}

	var title, description string
	switch postType {
	case models.PostTypeExecutive:
		if req.PostTitle == "" {
			return apperrors.NewValidationError("postTitle", "postTitle is required for executive posts")
		}
		title = req.PostTitle
		description = fmt.Sprintf("assigned executive post %q for session %s", req.PostTitle, req.Session)

	case models.PostTypeFamilyHead:
		if req.FamilyName == "" {
			return apperrors.NewValidationError("familyName", "familyName is required for family head posts")
		}
		title = req.FamilyName
		description = fmt.Sprintf("assigned family head of %q for session %s", req.FamilyName, req.Session)

	case models.PostTypeWorkerUnit:
		if req.UnitName == "" {
			return apperrors.NewValidationError("unitName", "unitName is required for worker unit posts")
		}
		title = req.UnitName
		description = fmt.Sprintf("assigned to worker unit %q for session %s", req.UnitName, req.Session)

	case models.PostTypeOther:
		if req.PostTitle == "" {
			return apperrors.NewValidationError("postTitle", "postTitle is required for other posts")
		}
		title = req.PostTitle
		description = fmt.Sprintf("assigned post %q for session %s", req.PostTitle, req.Session)
	}

	err = s.postRepo.AssignPost(ctx, &models.PostAssignment{
		UserID:        userID,
		Type:          postType,
		Title:         title,
		Session:       req.Session,
		Department:    helpers.StringPtr(req.Department),
		AcademicLevel: helpers.StringPtr(req.AcademicLevel),
		Description:   description,
		AssignedBy:    admin.ID,
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("userID", userID).Str("postType", req.PostType).
		Int64("assignedBy", admin.ID).Msg("Post assigned")
	return nil
}

// GetUserHistory retrieves a user's role history and activity log, newest first
func (s *adminServiceImpl) GetUserHistory(ctx context.Context, adminID, userID int64) (*dto.UserHistoryResponse, error) {
	if _, err := s.authzService.RequireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	roleHistory, err := s.auditRepo.GetRoleHistoryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	activityLog, err := s.auditRepo.GetActivityLogByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserHistoryResponse{
		RoleHistory: dto.ToRoleHistoryResponses(roleHistory),
		ActivityLog: dto.ToActivityLogResponses(activityLog),
	}, nil
}

// FilterUsers retrieves users by a single filter: role, withoutPosts, or
// session. The session filter only considers executive posts.
func (s *adminServiceImpl) FilterUsers(ctx context.Context, adminID int64, filter *dto.UserFilterRequest) ([]*models.User, error) {
	if _, err := s.authzService.RequireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	switch {
	case filter.Role != "":
		role := models.Role(filter.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, filter.Role)
		}
		return s.userRepo.GetByRole(ctx, role)
	case filter.WithoutPosts:
		return s.userRepo.GetWithoutPosts(ctx)
	case filter.Session != "":
		return s.userRepo.GetBySession(ctx, filter.Session)
	default:
		return s.userRepo.GetAll(ctx)
	}
}
