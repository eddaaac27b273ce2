package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerlogic/ledgerlogic/internal/apperrors"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portsrepo "github.com/ledgerlogic/ledgerlogic/internal/core/ports/repositories"
)

// PgxUserRepository persists users in PostgreSQL.
type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, first_name, last_name, email, role, password_hash, active, suspension_start, suspension_end, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.PasswordHash,
		&user.Active,
		&user.SuspensionStart,
		&user.SuspensionEnd,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
	)
	return user, err
}

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Role,
		user.PasswordHash,
		user.Active,
		user.SuspensionStart,
		user.SuspensionEnd,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: username or email already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", user.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a single user by its primary key.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`

	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return &user, nil
}

// FindUserByUsername retrieves a single user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`

	user, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

// ListUsers retrieves all users ordered by username.
func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

// UpdateUser replaces the mutable columns of an existing user.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, role = $5, last_updated_at = $6, last_updated_by = $7
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Role,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: email already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, user.UserID)
	}
	return nil
}

// SetUserActive flips a user's active flag.
func (r *PgxUserRepository) SetUserActive(ctx context.Context, userID string, active bool, updatedByUserID string, now time.Time) error {
	query := `
		UPDATE users
		SET active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, active, now, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to change active state for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return nil
}

// SuspendUser applies a suspension window to a user.
func (r *PgxUserRepository) SuspendUser(ctx context.Context, userID string, start, end time.Time, updatedByUserID string, now time.Time) error {
	query := `
		UPDATE users
		SET suspension_start = $2, suspension_end = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, start, end, now, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to suspend user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return nil
}

// ClearExpiredSuspensions removes suspension windows that ended before now.
func (r *PgxUserRepository) ClearExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE users
		SET suspension_start = NULL, suspension_end = NULL, last_updated_at = $1
		WHERE suspension_end IS NOT NULL AND suspension_end < $1;
	`
	tag, err := r.Pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to clear expired suspensions: %w", err)
	}
	return tag.RowsAffected(), nil
}
