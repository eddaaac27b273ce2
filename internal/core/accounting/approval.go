package accounting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledgerlogic/ledgerlogic/internal/apperrors"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// ErrEntryNotPending is returned when approving or rejecting an entry that
// already reached a terminal state.
var ErrEntryNotPending = errors.New("journal entry is not pending")

// ApproveEntry marks the identified entry approved and returns a journal with
// a fresh entry collection; the input journal is never mutated. Only pending
// entries may transition.
func ApproveEntry(journal domain.Journal, entryID string) (domain.Journal, error) {
	return transitionEntry(journal, entryID, func(entry *domain.JournalEntry) error {
		entry.Status = domain.EntryApproved
		return nil
	})
}

// RejectEntry marks the identified entry rejected with the given reason. A
// blank reason fails validation and leaves the journal untouched.
func RejectEntry(journal domain.Journal, entryID, reason string) (domain.Journal, error) {
	if strings.TrimSpace(reason) == "" {
		return journal, fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}
	return transitionEntry(journal, entryID, func(entry *domain.JournalEntry) error {
		entry.Status = domain.EntryRejected
		entry.RejectionReason = reason
		return nil
	})
}

// transitionEntry copies the entry collection, applies mutate to the matching
// pending entry, and returns the updated journal. All other entries are
// carried over untouched.
func transitionEntry(journal domain.Journal, entryID string, mutate func(*domain.JournalEntry) error) (domain.Journal, error) {
	idx := -1
	for i, e := range journal.Entries {
		if e.JournalEntryID == entryID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return journal, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	if journal.Entries[idx].Status != domain.EntryPending {
		return journal, fmt.Errorf("%w: entry %s is %s", ErrEntryNotPending, entryID, journal.Entries[idx].Status)
	}

	entries := make([]domain.JournalEntry, len(journal.Entries))
	copy(entries, journal.Entries)
	if err := mutate(&entries[idx]); err != nil {
		return journal, err
	}

	journal.Entries = entries
	return journal, nil
}
