package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/db"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/dberrors"
)

const mentorshipColumns = `id, mentor_id, mentee_id, interests, department, status, is_mentor, created_at`

// IMentorshipRepository defines the interface for mentorship persistence
type IMentorshipRepository interface {
	Create(ctx context.Context, mentorship *models.Mentorship) error
	ListMentors(ctx context.Context) ([]*models.Mentorship, error)
	ListMentees(ctx context.Context) ([]*models.Mentorship, error)
	ListMatches(ctx context.Context) ([]*models.Mentorship, error)
}

// MentorshipRepository handles mentorship persistence
type MentorshipRepository struct {
	db *db.PostgresDB
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(database *db.PostgresDB) *MentorshipRepository {
	return &MentorshipRepository{db: database}
}

func collectMentorships(rows pgx.Rows) ([]*models.Mentorship, error) {
	defer rows.Close()

	var items []*models.Mentorship
	for rows.Next() {
		m := &models.Mentorship{}
		err := rows.Scan(&m.ID, &m.MentorID, &m.MenteeID, &m.Interests, &m.Department,
			&m.Status, &m.IsMentor, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Create inserts a new mentorship registration
func (r *MentorshipRepository) Create(ctx context.Context, mentorship *models.Mentorship) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO mentorships (mentor_id, mentee_id, interests, department, status, is_mentor)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		mentorship.MentorID, mentorship.MenteeID, mentorship.Interests,
		mentorship.Department, mentorship.Status, mentorship.IsMentor).
		Scan(&mentorship.ID, &mentorship.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating mentorship: %w", err)
	}
	return nil
}

// ListMentors retrieves mentorship registrations offering mentoring
func (r *MentorshipRepository) ListMentors(ctx context.Context) ([]*models.Mentorship, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+mentorshipColumns+` FROM mentorships WHERE is_mentor = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}
	return collectMentorships(rows)
}

// ListMentees retrieves mentorship registrations seeking mentoring
func (r *MentorshipRepository) ListMentees(ctx context.Context) ([]*models.Mentorship, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+mentorshipColumns+` FROM mentorships WHERE is_mentor = FALSE ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing mentees: %w", err)
	}
	return collectMentorships(rows)
}

// ListMatches retrieves matched mentorships with both participants hydrated
func (r *MentorshipRepository) ListMatches(ctx context.Context) ([]*models.Mentorship, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT m.id, m.mentor_id, m.mentee_id, m.interests, m.department, m.status,
			m.is_mentor, m.created_at,
			mu.id, mu.email, mu.first_name, mu.last_name, mu.role,
			su.id, su.email, su.first_name, su.last_name, su.role
		FROM mentorships m
		JOIN users mu ON mu.id = m.mentor_id
		JOIN users su ON su.id = m.mentee_id
		WHERE m.mentee_id IS NOT NULL
		ORDER BY m.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorship matches: %w", err)
	}
	defer rows.Close()

	var items []*models.Mentorship
	for rows.Next() {
		m := &models.Mentorship{}
		mentor := &models.User{}
		mentee := &models.User{}
		err := rows.Scan(&m.ID, &m.MentorID, &m.MenteeID, &m.Interests, &m.Department,
			&m.Status, &m.IsMentor, &m.CreatedAt,
			&mentor.ID, &mentor.Email, &mentor.FirstName, &mentor.LastName, &mentor.Role,
			&mentee.ID, &mentee.Email, &mentee.FirstName, &mentee.LastName, &mentee.Role)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship match: %w", err)
		}
		m.Mentor = mentor
		m.Mentee = mentee
		items = append(items, m)
	}
	return items, rows.Err()
}
