package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerlogic/ledgerlogic/internal/apperrors"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portsrepo "github.com/ledgerlogic/ledgerlogic/internal/core/ports/repositories"
)

// PgxJournalRepository persists journals and their entries in PostgreSQL.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveJournal inserts a journal and all of its entries in one transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	journalQuery := `
		INSERT INTO journals (journal_id, transaction_date, status, attached_file, attached_file_content_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, journalQuery,
		journal.JournalID,
		journal.TransactionDate,
		journal.Status,
		journal.AttachedFile,
		journal.AttachedFileContentType,
		journal.CreatedAt,
		journal.CreatedBy,
		journal.LastUpdatedAt,
		journal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal %s: %w", journal.JournalID, err)
	}

	entryQuery := `
		INSERT INTO journal_entries (journal_entry_id, journal_id, account_id, debit, credit, status, rejection_reason, description, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for i, entry := range journal.Entries {
		_, err = tx.Exec(ctx, entryQuery,
			entry.JournalEntryID,
			journal.JournalID,
			entry.AccountID,
			entry.Debit,
			entry.Credit,
			entry.Status,
			entry.RejectionReason,
			entry.Description,
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to save journal entry %s: %w", entry.JournalEntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal with its entries in recorded order.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journalQuery := `
		SELECT journal_id, transaction_date, status, attached_file, attached_file_content_type, created_at, created_by, last_updated_at, last_updated_by
		FROM journals WHERE journal_id = $1;
	`
	var journal domain.Journal
	err := r.Pool.QueryRow(ctx, journalQuery, journalID).Scan(
		&journal.JournalID,
		&journal.TransactionDate,
		&journal.Status,
		&journal.AttachedFile,
		&journal.AttachedFileContentType,
		&journal.CreatedAt,
		&journal.CreatedBy,
		&journal.LastUpdatedAt,
		&journal.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, journalID)
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	entries, err := r.findEntries(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal.Entries = entries
	return &journal, nil
}

// ListJournals retrieves journals newest first, optionally narrowed to one
// aggregate status, each with its entries attached.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, status *domain.JournalStatus) ([]domain.Journal, error) {
	query := `
		SELECT journal_id, transaction_date, status, attached_file, attached_file_content_type, created_at, created_by, last_updated_at, last_updated_by
		FROM journals
	`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		var journal domain.Journal
		if err := rows.Scan(
			&journal.JournalID,
			&journal.TransactionDate,
			&journal.Status,
			&journal.AttachedFile,
			&journal.AttachedFileContentType,
			&journal.CreatedAt,
			&journal.CreatedBy,
			&journal.LastUpdatedAt,
			&journal.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, journal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal rows: %w", err)
	}

	for i := range journals {
		entries, err := r.findEntries(ctx, journals[i].JournalID)
		if err != nil {
			return nil, err
		}
		journals[i].Entries = entries
	}
	return journals, nil
}

// UpdateJournalEntries replaces every entry row's status fields and the
// journal's aggregate status in one transaction.
func (r *PgxJournalRepository) UpdateJournalEntries(ctx context.Context, journal domain.Journal, updatedByUserID string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	entryQuery := `
		UPDATE journal_entries
		SET status = $2, rejection_reason = $3
		WHERE journal_entry_id = $1 AND journal_id = $4;
	`
	for _, entry := range journal.Entries {
		tag, err := tx.Exec(ctx, entryQuery, entry.JournalEntryID, entry.Status, entry.RejectionReason, journal.JournalID)
		if err != nil {
			return fmt.Errorf("failed to update journal entry %s: %w", entry.JournalEntryID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entry.JournalEntryID)
		}
	}

	journalQuery := `
		UPDATE journals
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1;
	`
	tag, err := tx.Exec(ctx, journalQuery, journal.JournalID, journal.Status, updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update journal %s: %w", journal.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, journal.JournalID)
	}

	return r.Commit(ctx, tx)
}

// findEntries loads a journal's entries joined with their account names.
func (r *PgxJournalRepository) findEntries(ctx context.Context, journalID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT e.journal_entry_id, e.account_id, a.account_name, e.debit, e.credit, e.status, e.rejection_reason, e.description
		FROM journal_entries e
		JOIN accounts a ON a.account_id = e.account_id
		WHERE e.journal_id = $1
		ORDER BY e.position;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries for %s: %w", journalID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(
			&entry.JournalEntryID,
			&entry.AccountID,
			&entry.AccountName,
			&entry.Debit,
			&entry.Credit,
			&entry.Status,
			&entry.RejectionReason,
			&entry.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entry rows: %w", err)
	}
	return entries, nil
}
