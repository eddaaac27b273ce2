package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerlogic/ledgerlogic/internal/apperrors"
	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/ledgerlogic/ledgerlogic/internal/core/services"
	"github.com/ledgerlogic/ledgerlogic/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockJournalRepository is a mock type for the JournalRepository interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, status *domain.JournalStatus) ([]domain.Journal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalEntries(ctx context.Context, journal domain.Journal, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, journal, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)
}

func (suite *JournalServiceTestSuite) storedJournal() *domain.Journal {
	return &domain.Journal{
		JournalID:       "j-1",
		TransactionDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:          domain.JournalPending,
		Entries: []domain.JournalEntry{
			{JournalEntryID: "e-1", AccountID: "a-1", AccountName: "Cash", Debit: decimal.NewFromInt(250), Status: domain.EntryPending},
			{JournalEntryID: "e-2", AccountID: "a-2", AccountName: "Service Revenue", Credit: decimal.NewFromInt(250), Status: domain.EntryPending},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Entries: []dto.CreateJournalEntryRequest{
			{AccountID: "a-1", Debit: decimal.NewFromInt(100)},
			{AccountID: "a-2", Credit: decimal.NewFromInt(100)},
		},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "a-1").
		Return(&domain.Account{AccountID: "a-1", AccountName: "Cash"}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "a-2").
		Return(&domain.Account{AccountID: "a-2", AccountName: "Service Revenue"}, nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()

	journal, err := suite.service.CreateJournal(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(journal)
	suite.Equal(domain.JournalPending, journal.Status)
	suite.Require().Len(journal.Entries, 2)
	suite.Equal(domain.EntryPending, journal.Entries[0].Status)
	suite.Equal("Cash", journal.Entries[0].AccountName)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Entries: []dto.CreateJournalEntryRequest{
			{AccountID: "a-1", Debit: decimal.NewFromInt(100)},
			{AccountID: "a-2", Credit: decimal.NewFromInt(90)},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, req, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(journal)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal")
}

func (suite *JournalServiceTestSuite) TestCreateJournal_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionDate: time.Now(),
		Entries: []dto.CreateJournalEntryRequest{
			{AccountID: "a-1", Debit: decimal.NewFromInt(-100)},
			{AccountID: "a-2", Credit: decimal.NewFromInt(-100)},
		},
	}

	_, err := suite.service.CreateJournal(ctx, req, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestApproveEntry_DerivesPendingStatus() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j-1").Return(suite.storedJournal(), nil).Once()
	suite.mockJournalRepo.On("UpdateJournalEntries", ctx, mock.AnythingOfType("domain.Journal"), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	journal, err := suite.service.ApproveEntry(ctx, "j-1", "e-1", userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryApproved, journal.Entries[0].Status)
	// One entry still pending keeps the journal pending.
	suite.Equal(domain.JournalPending, journal.Status)
}

func (suite *JournalServiceTestSuite) TestApproveEntry_LastEntryApprovesJournal() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := suite.storedJournal()
	stored.Entries[0].Status = domain.EntryApproved

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j-1").Return(stored, nil).Once()
	suite.mockJournalRepo.On("UpdateJournalEntries", ctx, mock.AnythingOfType("domain.Journal"), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	journal, err := suite.service.ApproveEntry(ctx, "j-1", "e-2", userID)

	suite.Require().NoError(err)
	suite.Equal(domain.JournalApproved, journal.Status)
}

func (suite *JournalServiceTestSuite) TestRejectEntry_MarksJournalRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := suite.storedJournal()
	stored.Entries[0].Status = domain.EntryApproved

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j-1").Return(stored, nil).Once()
	suite.mockJournalRepo.On("UpdateJournalEntries", ctx, mock.AnythingOfType("domain.Journal"), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	journal, err := suite.service.RejectEntry(ctx, "j-1", "e-2", "amount disputed", userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryRejected, journal.Entries[1].Status)
	suite.Equal("amount disputed", journal.Entries[1].RejectionReason)
	suite.Equal(domain.JournalRejected, journal.Status)
}

func (suite *JournalServiceTestSuite) TestRejectEntry_EmptyReasonNotPersisted() {
	ctx := context.Background()

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j-1").Return(suite.storedJournal(), nil).Once()

	_, err := suite.service.RejectEntry(ctx, "j-1", "e-1", "  ", uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournalEntries")
}

func (suite *JournalServiceTestSuite) TestApproveEntry_AlreadyApproved() {
	ctx := context.Background()
	stored := suite.storedJournal()
	stored.Entries[0].Status = domain.EntryApproved

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j-1").Return(stored, nil).Once()

	_, err := suite.service.ApproveEntry(ctx, "j-1", "e-1", uuid.NewString())

	suite.Require().ErrorIs(err, accounting.ErrEntryNotPending)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournalEntries")
}

func (suite *JournalServiceTestSuite) TestApproveEntry_JournalNotFound() {
	ctx := context.Background()

	suite.mockJournalRepo.On("FindJournalByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ApproveEntry(ctx, "missing", "e-1", uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
