package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/handlers"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListMembers(ctx context.Context, rc domain.RequestContext) ([]domain.CompanyMember, error) {
	args := m.Called(ctx, rc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyMember), args.Error(1)
}
func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) AddMember(ctx context.Context, rc domain.RequestContext, req dto.AddMemberRequest) error {
	args := m.Called(ctx, rc, req)
	return args.Error(0)
}
func (m *MockCompanyService) ResolveRequestContext(ctx context.Context, userID, companyID string) (domain.RequestContext, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).(domain.RequestContext), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, rc domain.RequestContext, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, rc, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, rc domain.RequestContext, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, rc, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.Account, error) {
	args := m.Called(ctx, rc, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, rc domain.RequestContext, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, rc, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetVoucher(ctx context.Context, rc domain.RequestContext, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, rc, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockLedgerService) ListVouchers(ctx context.Context, rc domain.RequestContext, filter repositories.VoucherFilter) ([]domain.Voucher, error) {
	args := m.Called(ctx, rc, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}
func (m *MockLedgerService) PostVoucher(ctx context.Context, rc domain.RequestContext, draft domain.VoucherDraft) (*domain.Voucher, error) {
	args := m.Called(ctx, rc, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCompanyService *MockCompanyService
	mockAccountService *MockAccountService
	mockLedgerService  *MockLedgerService
	jwtSecret          string
	userID             string
	companyID          string
	rc                 domain.RequestContext
}

const testIssuer = "erp-test"

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = "user-1"
	suite.companyID = "company-1"
	suite.rc = domain.RequestContext{CompanyID: suite.companyID, ActorID: suite.userID, Role: domain.RoleAdmin}

	suite.mockCompanyService = new(MockCompanyService)
	suite.mockAccountService = new(MockAccountService)
	suite.mockLedgerService = new(MockLedgerService)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger), middleware.AuthMiddleware(suite.jwtSecret, testIssuer))

	services := &portssvc.ServiceContainer{
		Company: suite.mockCompanyService,
		Account: suite.mockAccountService,
		Ledger:  suite.mockLedgerService,
	}
	company := suite.router.Group("/api/v1/companies/:company_id", middleware.CompanyContext(suite.mockCompanyService))
	handlers.RegisterCompanyScopedRoutes(company, services)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockCompanyService.AssertExpectations(suite.T())
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockLedgerService.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT for userID.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// expectMember makes the caller an admin of the test company.
func (suite *HandlerTestSuite) expectMember() {
	suite.mockCompanyService.On("ResolveRequestContext", mock.Anything, suite.userID, suite.companyID).
		Return(suite.rc, nil).Once()
}

// do sends an authenticated request and returns the recorder.
func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, "/api/v1/companies/"+suite.companyID+path, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorder's body into a generic map.
func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (suite *HandlerTestSuite) TestMissingToken_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/"+suite.companyID+"/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCompanyService.AssertNotCalled(suite.T(), "ResolveRequestContext", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
