package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus is the aggregate state of a journal, derived from its entries.
type JournalStatus string

const (
	JournalPending  JournalStatus = "PENDING"
	JournalApproved JournalStatus = "APPROVED"
	JournalRejected JournalStatus = "REJECTED"
)

// EntryStatus is the approval state of a single journal entry.
type EntryStatus string

const (
	EntryPending  EntryStatus = "pending"
	EntryApproved EntryStatus = "approved"
	EntryRejected EntryStatus = "rejected"
)

// JournalEntry is a single debit/credit line within a journal. One of Debit or
// Credit is typically zero. RejectionReason is populated only when rejected.
type JournalEntry struct {
	JournalEntryID  string          `json:"journalEntryId"`
	AccountID       string          `json:"accountId"`
	AccountName     string          `json:"accountName"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Status          EntryStatus     `json:"status"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	Description     string          `json:"description"`
}

// Journal owns an ordered collection of entries plus an optional attachment.
// AttachedFile is raw bytes; encoding/json carries it as base64 on the wire.
type Journal struct {
	JournalID               string         `json:"journalId"`
	TransactionDate         time.Time      `json:"transactionDate"`
	Status                  JournalStatus  `json:"status"`
	Entries                 []JournalEntry `json:"journalEntries"`
	AttachedFile            []byte         `json:"attachedFile,omitempty"`
	AttachedFileContentType string         `json:"attachedFileContentType,omitempty"`
	AuditFields
}

// DeriveStatus computes the aggregate journal status from its entries:
// PENDING while any entry is pending, REJECTED if any entry was rejected,
// APPROVED otherwise.
func (j Journal) DeriveStatus() JournalStatus {
	rejected := false
	for _, e := range j.Entries {
		switch e.Status {
		case EntryPending:
			return JournalPending
		case EntryRejected:
			rejected = true
		}
	}
	if rejected {
		return JournalRejected
	}
	return JournalApproved
}
