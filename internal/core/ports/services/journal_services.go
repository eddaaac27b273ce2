package services

import (
	"context"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/ledgerlogic/ledgerlogic/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal with all of its entries.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves journals, optionally narrowed to one aggregate
	// status.
	ListJournals(ctx context.Context, status *domain.JournalStatus) ([]domain.Journal, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournal validates and persists a new journal with pending entries.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.Journal, error)
}

// JournalApprovalSvc defines the per-entry approval workflow
type JournalApprovalSvc interface {
	// ApproveEntry approves a single pending entry and recomputes the
	// journal's aggregate status.
	ApproveEntry(ctx context.Context, journalID, entryID, userID string) (*domain.Journal, error)

	// RejectEntry rejects a single pending entry with a mandatory reason and
	// recomputes the journal's aggregate status.
	RejectEntry(ctx context.Context, journalID, entryID, reason, userID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalApprovalSvc
}
