package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ledgerlogic/ledgerlogic/internal/apperrors"
	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/ledgerlogic/ledgerlogic/internal/dto"
	"github.com/ledgerlogic/ledgerlogic/internal/handlers"
	"github.com/ledgerlogic/ledgerlogic/internal/utils"
	"github.com/ledgerlogic/ledgerlogic/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, filter accounting.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ChartOfAccounts(ctx context.Context, filter accounting.AccountFilter) ([]domain.ChartSection, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartSection), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ListJournals(ctx context.Context, status *domain.JournalStatus) ([]domain.Journal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}
func (m *MockJournalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) ApproveEntry(ctx context.Context, journalID, entryID, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalService) RejectEntry(ctx context.Context, journalID, entryID, reason, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID, entryID, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}
func (m *MockReportingService) RetainedEarnings(ctx context.Context, from, to time.Time) (*domain.RetainedEarningsStatement, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RetainedEarningsStatement), args.Error(1)
}
func (m *MockReportingService) EmailIncomeStatement(ctx context.Context, from, to time.Time, recipient string) error {
	args := m.Called(ctx, from, to, recipient)
	return args.Error(0)
}
func (m *MockReportingService) EmailRetainedEarnings(ctx context.Context, from, to time.Time, recipient string) error {
	args := m.Called(ctx, from, to, recipient)
	return args.Error(0)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) SetUserActive(ctx context.Context, userID string, active bool, requestingUserID string) error {
	args := m.Called(ctx, userID, active, requestingUserID)
	return args.Error(0)
}
func (m *MockUserService) SuspendUser(ctx context.Context, userID string, start, end time.Time, requestingUserID string) error {
	args := m.Called(ctx, userID, start, end, requestingUserID)
	return args.Error(0)
}
func (m *MockUserService) LiftExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
}

// generateTestToken creates a signed JWT carrying the given role.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, _, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "ledgerlogic-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	registerTestValidations()

	suite.mockAccountService = new(MockAccountService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger route setup
	}
	container := &portssvc.ServiceContainer{
		Account:   suite.mockAccountService,
		Journal:   new(MockJournalService),
		Reporting: new(MockReportingService),
		User:      new(MockUserService),
		Token:     new(MockTokenService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// registerTestValidations mirrors the custom binding validations installed at
// startup, so create/update payloads validate the same way under test.
func registerTestValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("accountnumber", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 4 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	_ = v.RegisterValidation("normalside", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "Debit" || s == "Credit"
	})
}

func (suite *AccountHandlerTestSuite) doRequest(method, url string, body []byte, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	userID := uuid.NewString()
	expected := []domain.Account{
		{
			AccountID:     uuid.NewString(),
			AccountNumber: "1110",
			AccountName:   "Cash",
			Category:      domain.CategoryAssets,
			NormalSide:    domain.DebitSide,
			Balance:       decimal.NewFromInt(2500),
			Active:        true,
		},
	}

	suite.mockAccountService.On("ListAccounts",
		mock.Anything,
		mock.MatchedBy(func(f accounting.AccountFilter) bool {
			// No filter params given: all categories, no search term.
			return len(f.Categories) == len(accounting.DefaultCategories()) && f.Search == ""
		}),
	).Return(expected, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleAccountant)
	w := suite.doRequest(http.MethodGet, "/api/v1/accounts", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
	suite.Equal("1110", body[0].AccountNumber)
	suite.Equal("Cash", body[0].AccountName)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_MissingToken() {
	w := suite.doRequest(http.MethodGet, "/api/v1/accounts", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_AdminSucceeds() {
	adminID := uuid.NewString()
	reqBody := dto.CreateAccountRequest{
		AccountNumber: "1110",
		AccountName:   "Cash",
		Category:      domain.CategoryAssets,
		SubCategory:   "Current Assets",
		NormalSide:    "Debit",
		Balance:       decimal.NewFromInt(1000),
		Statement:     "BS",
	}
	created := &domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: reqBody.AccountNumber,
		AccountName:   reqBody.AccountName,
		Category:      reqBody.Category,
		SubCategory:   reqBody.SubCategory,
		NormalSide:    domain.DebitSide,
		Balance:       reqBody.Balance,
		Statement:     reqBody.Statement,
		Active:        true,
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, reqBody, adminID).
		Return(created, nil).Once()

	payload, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(adminID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", payload, token)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.AccountID, body.AccountID)
	suite.True(body.Active)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_AccountantForbidden() {
	reqBody := dto.CreateAccountRequest{
		AccountNumber: "1110",
		AccountName:   "Cash",
		Category:      domain.CategoryAssets,
		NormalSide:    "Debit",
	}
	payload, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAccountant)
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", payload, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_RejectsNonDigitAccountNumber() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)

	for _, number := range []string{"-112", "+511", "12a4", "111", "11105"} {
		reqBody := dto.CreateAccountRequest{
			AccountNumber: number,
			AccountName:   "Cash",
			Category:      domain.CategoryAssets,
			NormalSide:    "Debit",
		}
		payload, _ := json.Marshal(reqBody)
		w := suite.doRequest(http.MethodPost, "/api/v1/accounts", payload, token)

		suite.Equal(http.StatusBadRequest, w.Code, "account number %q must fail validation", number)
	}
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateNumber() {
	adminID := uuid.NewString()
	reqBody := dto.CreateAccountRequest{
		AccountNumber: "1110",
		AccountName:   "Cash",
		Category:      domain.CategoryAssets,
		NormalSide:    "Debit",
		// JSON binding decodes the marshaled zero balance into an allocated
		// decimal, so the mock's DeepEqual match needs the same representation.
		Balance: decimal.NewFromInt(0),
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, reqBody, adminID).
		Return(nil, fmt.Errorf("%w: account number 1110 already exists", apperrors.ErrDuplicate)).Once()

	payload, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(adminID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", payload, token)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleAccountant)
	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestChartOfAccounts_Success() {
	sections := []domain.ChartSection{
		{
			Name: "Current Assets",
			Accounts: []domain.Account{
				{AccountID: uuid.NewString(), AccountNumber: "1110", AccountName: "Cash", Category: domain.CategoryAssets, Active: true},
			},
		},
	}

	suite.mockAccountService.On("ChartOfAccounts", mock.Anything, mock.Anything).
		Return(sections, nil).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleManager)
	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/chart", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ChartOfAccountsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Sections, 1)
	suite.Equal("Current Assets", body.Sections[0].Section)
	suite.Len(body.Sections[0].Accounts, 1)

	suite.mockAccountService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
