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
	"github.com/shopspring/decimal"
)

// journalServiceImpl implements the JournalSvcFacade interface
type journalServiceImpl struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new journal service. The account reader is used
// to resolve and validate entry accounts at creation time.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalServiceImpl{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure journalServiceImpl implements the JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalServiceImpl)(nil)

// CreateJournal validates the double-entry invariant (total debits equal
// total credits) and persists the journal with every entry pending.
func (s *journalServiceImpl) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, e := range req.Entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: debit and credit amounts must not be negative", apperrors.ErrValidation)
		}
		totalDebits = totalDebits.Add(e.Debit)
		totalCredits = totalCredits.Add(e.Credit)
	}
	if !totalDebits.Equal(totalCredits) {
		s.LogError(ctx, apperrors.ErrValidation, "Journal is unbalanced",
			slog.String("total_debits", totalDebits.String()),
			slog.String("total_credits", totalCredits.String()))
		return nil, fmt.Errorf("%w: total debits %s do not equal total credits %s",
			apperrors.ErrValidation, totalDebits, totalCredits)
	}

	now := time.Now()
	entries := make([]domain.JournalEntry, len(req.Entries))
	for i, e := range req.Entries {
		account, err := s.accountRepo.FindAccountByID(ctx, e.AccountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve entry account", slog.String("account_id", e.AccountID))
			return nil, fmt.Errorf("invalid entry account %s: %w", e.AccountID, err)
		}
		entries[i] = domain.JournalEntry{
			JournalEntryID: uuid.NewString(),
			AccountID:      account.AccountID,
			AccountName:    account.AccountName,
			Debit:          e.Debit,
			Credit:         e.Credit,
			Status:         domain.EntryPending,
			Description:    e.Description,
		}
	}

	journal := domain.Journal{
		JournalID:               uuid.NewString(),
		TransactionDate:         req.TransactionDate,
		Status:                  domain.JournalPending,
		Entries:                 entries,
		AttachedFile:            req.AttachedFile,
		AttachedFileContentType: req.AttachedFileContentType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		s.LogError(ctx, err, "Failed to save journal")
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	s.LogInfo(ctx, "Journal created",
		slog.String("journal_id", journal.JournalID),
		slog.Int("entry_count", len(entries)))
	return &journal, nil
}

func (s *journalServiceImpl) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal", slog.String("journal_id", journalID))
		return nil, err
	}
	return journal, nil
}

func (s *journalServiceImpl) ListJournals(ctx context.Context, status *domain.JournalStatus) ([]domain.Journal, error) {
	journals, err := s.journalRepo.ListJournals(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals")
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	return journals, nil
}

func (s *journalServiceImpl) ApproveEntry(ctx context.Context, journalID, entryID, userID string) (*domain.Journal, error) {
	return s.transition(ctx, journalID, userID, func(j domain.Journal) (domain.Journal, error) {
		return accounting.ApproveEntry(j, entryID)
	})
}

func (s *journalServiceImpl) RejectEntry(ctx context.Context, journalID, entryID, reason, userID string) (*domain.Journal, error) {
	return s.transition(ctx, journalID, userID, func(j domain.Journal) (domain.Journal, error) {
		return accounting.RejectEntry(j, entryID, reason)
	})
}

// transition loads the journal, applies the entry transition, recomputes the
// aggregate status and persists the result.
func (s *journalServiceImpl) transition(ctx context.Context, journalID, userID string, apply func(domain.Journal) (domain.Journal, error)) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal for transition", slog.String("journal_id", journalID))
		return nil, err
	}

	updated, err := apply(*journal)
	if err != nil {
		s.LogError(ctx, err, "Entry transition rejected", slog.String("journal_id", journalID))
		return nil, err
	}

	now := time.Now()
	updated.Status = updated.DeriveStatus()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.journalRepo.UpdateJournalEntries(ctx, updated, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to persist entry transition", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to persist entry transition: %w", err)
	}

	s.LogInfo(ctx, "Journal entry transitioned",
		slog.String("journal_id", journalID),
		slog.String("journal_status", string(updated.Status)))
	return &updated, nil
}
