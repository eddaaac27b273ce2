package repositories

import (
	"context"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// JournalReader provides read access to journals and their entries.
type JournalReader interface {
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, status *domain.JournalStatus) ([]domain.Journal, error)
}

// JournalWriter persists journals and entry status changes.
type JournalWriter interface {
	SaveJournal(ctx context.Context, journal domain.Journal) error
	// UpdateJournalEntries replaces the stored entry rows and aggregate
	// status for a journal in one transaction.
	UpdateJournalEntries(ctx context.Context, journal domain.Journal, updatedByUserID string, updatedAt time.Time) error
}

// JournalRepository is the full journal persistence surface.
type JournalRepository interface {
	JournalReader
	JournalWriter
}
