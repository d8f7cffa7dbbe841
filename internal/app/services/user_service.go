package services

import (
	"context"
	"strings"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/repositories"
)

// UserService defines the interface for the member directory and dashboard
type UserService interface {
	GetDirectory(ctx context.Context, search string) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetExecutivePosts(ctx context.Context, userID int64) ([]*models.ExecutivePost, error)
	GetWorkerUnits(ctx context.Context, userID int64) ([]*models.WorkerUnit, error)
	GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error)
	GetUpcomingBirthdays(ctx context.Context) ([]*models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo         repositories.IUserRepository
	postRepo         repositories.IPostRepository
	jobRepo          repositories.IJobRepository
	announcementRepo repositories.IAnnouncementRepository
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repositories.IUserRepository,
	postRepo repositories.IPostRepository,
	jobRepo repositories.IJobRepository,
	announcementRepo repositories.IAnnouncementRepository,
) UserService {
	return &userServiceImpl{
		userRepo:         userRepo,
		postRepo:         postRepo,
		jobRepo:          jobRepo,
		announcementRepo: announcementRepo,
	}
}

// GetDirectory retrieves the member directory, optionally filtered by a
// search over names and emails.
func (s *userServiceImpl) GetDirectory(ctx context.Context, search string) ([]*models.User, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return s.userRepo.GetAll(ctx)
	}
	return s.userRepo.Search(ctx, search)
}

// GetByID retrieves a single member profile
func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetExecutivePosts retrieves the executive posts held by a member
func (s *userServiceImpl) GetExecutivePosts(ctx context.Context, userID int64) ([]*models.ExecutivePost, error) {
	return s.postRepo.GetExecutivePostsByUser(ctx, userID)
}

// GetWorkerUnits retrieves the worker units a member belongs to
func (s *userServiceImpl) GetWorkerUnits(ctx context.Context, userID int64) ([]*models.WorkerUnit, error) {
	return s.postRepo.GetWorkerUnitsByUser(ctx, userID)
}

// GetDashboardStats aggregates community-wide counters
func (s *userServiceImpl) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	totalAlumni, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	activeMembers, err := s.userRepo.CountByRole(ctx, models.RoleAlumni)
	if err != nil {
		return nil, err
	}

	totalEvents, err := s.announcementRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalJobs, err := s.jobRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		TotalAlumni:   totalAlumni,
		ActiveMembers: activeMembers,
		TotalEvents:   totalEvents,
		TotalJobs:     totalJobs,
	}, nil
}

// GetUpcomingBirthdays retrieves members with a birthday in the next 30 days
func (s *userServiceImpl) GetUpcomingBirthdays(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetUpcomingBirthdays(ctx)
}
