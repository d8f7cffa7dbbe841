package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/db"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/dberrors"
)

const userColumns = `id, email, password, first_name, last_name, phone, birthday, attendance_years,
	profile_image_url, department, academic_level, role, can_post_announcements, created_at, updated_at`

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Search(ctx context.Context, query string) ([]*models.User, error)
	GetByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	GetWithoutPosts(ctx context.Context) ([]*models.User, error)
	GetBySession(ctx context.Context, session string) ([]*models.User, error)
	GetUpcomingBirthdays(ctx context.Context) ([]*models.User, error)
	UpdateAcademicInfo(ctx context.Context, userID int64, department, academicLevel *string) error
	UpdateRoleWithHistory(ctx context.Context, userID int64, newRole models.Role, canPostAnnouncements *bool, reason *string, changedBy int64) error
	CountAll(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// UserRepository handles user persistence
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{db: database}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Phone, &user.Birthday, &user.AttendanceYears, &user.ProfileImageURL,
		&user.Department, &user.AcademicLevel, &user.Role, &user.CanPostAnnouncements,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return user, nil
}

func collectUsers(rows pgx.Rows) ([]*models.User, error) {
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Create inserts a new user and sets its generated ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, phone, attendance_years,
			department, academic_level, role, can_post_announcements)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		user.Email, user.Password, user.FirstName, user.LastName, user.Phone,
		user.AttendanceYears, user.Department, user.AcademicLevel, user.Role,
		user.CanPostAnnouncements).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// GetAll retrieves every user ordered by name
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY first_name, last_name`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return collectUsers(rows)
}

// Search retrieves users whose name or email matches the query
func (r *UserRepository) Search(ctx context.Context, query string) ([]*models.User, error) {
	pattern := "%" + query + "%"

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(userColumns).
		From("users").
		Where(sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
			sq.ILike{"email": pattern},
		}).
		OrderBy("first_name", "last_name")

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building search query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}
	return collectUsers(rows)
}

// GetByRole retrieves users holding a specific role
func (r *UserRepository) GetByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY first_name, last_name`, role)
	if err != nil {
		return nil, fmt.Errorf("error listing users by role: %w", err)
	}
	return collectUsers(rows)
}

// GetWithoutPosts retrieves users holding no post of any kind
func (r *UserRepository) GetWithoutPosts(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+userColumns+` FROM users u
		WHERE NOT EXISTS (SELECT 1 FROM executive_posts ep WHERE ep.user_id = u.id)
		  AND NOT EXISTS (SELECT 1 FROM family_heads fh WHERE fh.user_id = u.id)
		  AND NOT EXISTS (SELECT 1 FROM worker_units wu WHERE wu.user_id = u.id)
		  AND NOT EXISTS (SELECT 1 FROM other_posts op WHERE op.user_id = u.id)
		ORDER BY first_name, last_name`)
	if err != nil {
		return nil, fmt.Errorf("error listing users without posts: %w", err)
	}
	return collectUsers(rows)
}

// GetBySession retrieves users who held an executive post in the given session.
// Only executive_posts participates in the session filter.
func (r *UserRepository) GetBySession(ctx context.Context, session string) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT DISTINCT `+prefixedUserColumns("u")+` FROM users u
		JOIN executive_posts ep ON ep.user_id = u.id
		WHERE ep.session = $1
		ORDER BY u.first_name, u.last_name`, session)
	if err != nil {
		return nil, fmt.Errorf("error listing users by session: %w", err)
	}
	return collectUsers(rows)
}

// GetUpcomingBirthdays retrieves users whose birthday falls within the next 30 days
func (r *UserRepository) GetUpcomingBirthdays(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE birthday IS NOT NULL
		  AND (
			to_char(birthday, 'MMDD') BETWEEN to_char(CURRENT_DATE, 'MMDD')
				AND to_char(CURRENT_DATE + INTERVAL '30 days', 'MMDD')
			OR (
				to_char(CURRENT_DATE + INTERVAL '30 days', 'MMDD') < to_char(CURRENT_DATE, 'MMDD')
				AND (
					to_char(birthday, 'MMDD') >= to_char(CURRENT_DATE, 'MMDD')
					OR to_char(birthday, 'MMDD') <= to_char(CURRENT_DATE + INTERVAL '30 days', 'MMDD')
				)
			)
		  )
		ORDER BY to_char(birthday, 'MMDD')`)
	if err != nil {
		return nil, fmt.Errorf("error listing upcoming birthdays: %w", err)
	}
	return collectUsers(rows)
}

// UpdateAcademicInfo updates the department and academic level of a user.
// Nil fields are left untouched.
func (r *UserRepository) UpdateAcademicInfo(ctx context.Context, userID int64, department, academicLevel *string) error {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("users").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": userID})

	if department != nil {
		builder = builder.Set("department", *department)
	}
	if academicLevel != nil {
		builder = builder.Set("academic_level", *academicLevel)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building update query: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error updating academic info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateRoleWithHistory changes a user's role and records the change in
// role_history within a single transaction. The history row and the role
// update commit or roll back together.
func (r *UserRepository) UpdateRoleWithHistory(ctx context.Context, userID int64, newRole models.Role, canPostAnnouncements *bool, reason *string, changedBy int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var previousRole models.Role
		err := tx.QueryRow(ctx,
			`SELECT role FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&previousRole)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error loading user role: %w", err)
		}

		if canPostAnnouncements != nil {
			_, err = tx.Exec(ctx, `
				UPDATE users SET role = $1, can_post_announcements = $2, updated_at = CURRENT_TIMESTAMP
				WHERE id = $3`, newRole, *canPostAnnouncements, userID)
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE users SET role = $1, updated_at = CURRENT_TIMESTAMP
				WHERE id = $2`, newRole, userID)
		}
		if err != nil {
			return fmt.Errorf("error updating user role: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO role_history (user_id, previous_role, new_role, reason, changed_by)
			VALUES ($1, $2, $3, $4, $5)`,
			userID, previousRole, newRole, reason, changedBy)
		if err != nil {
			return fmt.Errorf("error recording role history: %w", err)
		}

		return nil
	})
}

// CountAll returns the total number of users
func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// CountByRole returns the number of users holding a role
func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}
	return count, nil
}

// prefixedUserColumns qualifies the user column list with a table alias
func prefixedUserColumns(alias string) string {
	return alias + `.id, ` + alias + `.email, ` + alias + `.password, ` + alias + `.first_name, ` +
		alias + `.last_name, ` + alias + `.phone, ` + alias + `.birthday, ` + alias + `.attendance_years, ` +
		alias + `.profile_image_url, ` + alias + `.department, ` + alias + `.academic_level, ` +
		alias + `.role, ` + alias + `.can_post_announcements, ` + alias + `.created_at, ` + alias + `.updated_at`
}
