package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerlogic/ledgerlogic/internal/apperrors"
	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portsrepo "github.com/ledgerlogic/ledgerlogic/internal/core/ports/repositories"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/ledgerlogic/ledgerlogic/internal/dto"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service backed by the given
// repository.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountServiceImpl{accountRepo: repo}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if existing, err := s.accountRepo.FindAccountByNumber(ctx, req.AccountNumber); err == nil && existing != nil {
		s.LogError(ctx, apperrors.ErrDuplicate, "Account number already in use",
			slog.String("account_number", req.AccountNumber))
		return nil, fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, req.AccountNumber)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Category:      req.Category,
		SubCategory:   req.SubCategory,
		NormalSide:    domain.NormalSide(req.NormalSide),
		Balance:       req.Balance,
		Description:   req.Description,
		Statement:     req.Statement,
		Active:        true,
		CreationDate:  now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_number", req.AccountNumber))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_number", account.AccountNumber))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, filter accounting.AccountFilter) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return filter.Apply(accounts), nil
}

// ChartOfAccounts groups the filtered accounts into the fixed number-range
// sections. Sections with no accounts are omitted; accounts whose numbers
// fall outside every range appear in no section.
func (s *accountServiceImpl) ChartOfAccounts(ctx context.Context, filter accounting.AccountFilter) ([]domain.ChartSection, error) {
	accounts, err := s.ListAccounts(ctx, filter)
	if err != nil {
		return nil, err
	}

	sections := make([]domain.ChartSection, 0, len(accounting.Buckets))
	for _, bucket := range accounting.Buckets {
		matched := accounting.FilterByNumberRange(accounts, bucket.Start, bucket.End)
		if len(matched) == 0 {
			continue
		}
		sections = append(sections, domain.ChartSection{
			Name:     bucket.Name,
			Accounts: matched,
		})
	}
	return sections, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		return nil, err
	}

	if req.AccountName != nil {
		account.AccountName = *req.AccountName
	}
	if req.SubCategory != nil {
		account.SubCategory = *req.SubCategory
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.Statement != nil {
		account.Statement = *req.Statement
	}
	if req.Active != nil {
		account.Active = *req.Active
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountServiceImpl) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
