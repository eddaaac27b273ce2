package repositories

import (
	"context"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// UserReader provides read access to users.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter persists user lifecycle changes.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	SetUserActive(ctx context.Context, userID string, active bool, updatedByUserID string, now time.Time) error
	SuspendUser(ctx context.Context, userID string, start, end time.Time, updatedByUserID string, now time.Time) error
	// ClearExpiredSuspensions removes suspension windows that ended before
	// now and returns how many users were affected.
	ClearExpiredSuspensions(ctx context.Context, now time.Time) (int64, error)
}

// UserRepository is the full user persistence surface.
type UserRepository interface {
	UserReader
	UserWriter
}
