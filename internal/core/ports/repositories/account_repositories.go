package repositories

import (
	"context"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// AccountReader provides read access to accounts.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter provides write access to accounts.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountRepository is the full account persistence surface.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
