package dto

import (
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryRequest is one debit/credit line of a new journal.
type CreateJournalEntryRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateJournalRequest defines the data needed to record a new journal.
// AttachedFile travels as base64 in JSON.
type CreateJournalRequest struct {
	TransactionDate         time.Time                   `json:"transactionDate" binding:"required"`
	Entries                 []CreateJournalEntryRequest `json:"journalEntries" binding:"required,min=2,dive"`
	AttachedFile            []byte                      `json:"attachedFile"`
	AttachedFileContentType string                      `json:"attachedFileContentType"`
}

// RejectEntryRequest carries the mandatory rejection reason.
type RejectEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListJournalsParams binds the journal listing query string.
type ListJournalsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalEntryID  string             `json:"journalEntryID"`
	AccountID       string             `json:"accountID"`
	AccountName     string             `json:"accountName"`
	Debit           decimal.Decimal    `json:"debit"`
	Credit          decimal.Decimal    `json:"credit"`
	Status          domain.EntryStatus `json:"status"`
	RejectionReason string             `json:"rejectionReason,omitempty"`
	Description     string             `json:"description"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID               string                 `json:"journalID"`
	TransactionDate         time.Time              `json:"transactionDate"`
	Status                  domain.JournalStatus   `json:"status"`
	Entries                 []JournalEntryResponse `json:"journalEntries"`
	AttachedFile            []byte                 `json:"attachedFile,omitempty"`
	AttachedFileContentType string                 `json:"attachedFileContentType,omitempty"`
	CreatedAt               time.Time              `json:"createdAt"`
	CreatedBy               string                 `json:"createdBy"`
	LastUpdatedAt           time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy           string                 `json:"lastUpdatedBy"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO
func ToJournalResponse(j *domain.Journal) JournalResponse {
	entries := make([]JournalEntryResponse, len(j.Entries))
	for i, e := range j.Entries {
		entries[i] = JournalEntryResponse{
			JournalEntryID:  e.JournalEntryID,
			AccountID:       e.AccountID,
			AccountName:     e.AccountName,
			Debit:           e.Debit,
			Credit:          e.Credit,
			Status:          e.Status,
			RejectionReason: e.RejectionReason,
			Description:     e.Description,
		}
	}
	return JournalResponse{
		JournalID:               j.JournalID,
		TransactionDate:         j.TransactionDate,
		Status:                  j.Status,
		Entries:                 entries,
		AttachedFile:            j.AttachedFile,
		AttachedFileContentType: j.AttachedFileContentType,
		CreatedAt:               j.CreatedAt,
		CreatedBy:               j.CreatedBy,
		LastUpdatedAt:           j.LastUpdatedAt,
		LastUpdatedBy:           j.LastUpdatedBy,
	}
}

// ToListJournalResponse converts a slice of domain.Journal to response DTOs
func ToListJournalResponse(journals []domain.Journal) []JournalResponse {
	res := make([]JournalResponse, len(journals))
	for i, j := range journals {
		res[i] = ToJournalResponse(&j)
	}
	return res
}
