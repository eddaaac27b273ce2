package services

import (
	"context"

	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/ledgerlogic/ledgerlogic/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves accounts narrowed by the given filter.
	ListAccounts(ctx context.Context, filter accounting.AccountFilter) ([]domain.Account, error)

	// ChartOfAccounts groups active accounts into the fixed number-range
	// sections, omitting empty sections.
	ChartOfAccounts(ctx context.Context, filter accounting.AccountFilter) ([]domain.ChartSection, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
