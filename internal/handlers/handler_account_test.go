package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	suite.expectMember()
	now := time.Now().UTC()
	created := &domain.Account{
		AccountID:   "acc-1",
		CompanyID:   suite.companyID,
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: suite.userID, LastUpdatedAt: now, LastUpdatedBy: suite.userID},
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.rc,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Code == "1000" && req.Name == "Cash" && req.AccountType == domain.Asset && req.ParentAccountID == nil
		}),
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/accounts", map[string]any{"code": "1000", "name": "Cash", "accountType": "ASSET"})

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("acc-1", body["accountID"])
	suite.Equal("ASSET", body["accountType"])
	suite.Equal(false, body["isDeleted"])
}

func (suite *HandlerTestSuite) TestCreateAccount_InvalidAccountType() {
	suite.expectMember()

	w := suite.do(http.MethodPost, "/accounts", map[string]any{"code": "1000", "name": "Cash", "accountType": "SAVINGS"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decode(w)["error"], "Invalid request format")
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate code", &apperrors.DuplicateCodeError{Entity: "account", Code: "1000"}, http.StatusConflict},
		{"forbidden", fmt.Errorf("%w: role READONLY cannot account:manage", apperrors.ErrForbidden), http.StatusForbidden},
		{"unknown parent", apperrors.NewValidationError("parent account not found"), http.StatusBadRequest},
		{"store unavailable", apperrors.Unavailable("create account", fmt.Errorf("connection reset")), http.StatusServiceUnavailable},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.expectMember()
			suite.mockAccountService.On("CreateAccount", mock.Anything, suite.rc, mock.Anything).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/accounts", map[string]any{"code": "1000", "name": "Cash", "accountType": "ASSET"})

			suite.Equal(tc.status, w.Code)
			suite.NotEmpty(suite.decode(w)["error"])
		})
	}
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.expectMember()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.rc, "missing").
		Return(nil, apperrors.NewNotFoundError("account missing")).Once()

	w := suite.do(http.MethodGet, "/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_IncludeDeleted() {
	suite.expectMember()
	suite.mockAccountService.On("ListAccounts", mock.Anything, suite.rc, true).Return([]domain.Account{
		{AccountID: "acc-1", Code: "1000", Name: "Cash", AccountType: domain.Asset},
		{AccountID: "acc-2", Code: "4000", Name: "Sales", AccountType: domain.Revenue, SoftDelete: domain.SoftDelete{IsDeleted: true}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/accounts?includeDeleted=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	accounts, ok := suite.decode(w)["accounts"].([]any)
	suite.Require().True(ok)
	suite.Len(accounts, 2)
}

func (suite *HandlerTestSuite) TestUpdateAccount_DeletedAccountConflict() {
	suite.expectMember()
	suite.mockAccountService.On("UpdateAccount", mock.Anything, suite.rc, "acc-1",
		mock.MatchedBy(func(req dto.UpdateAccountRequest) bool {
			return req.Name != nil && *req.Name == "Petty cash" && req.Code == nil
		}),
	).Return(nil, apperrors.NewStateError("account acc-1 is deleted")).Once()

	w := suite.do(http.MethodPatch, "/accounts/acc-1", map[string]any{"name": "Petty cash"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestNonMember_NotFound() {
	suite.mockCompanyService.On("ResolveRequestContext", mock.Anything, suite.userID, suite.companyID).
		Return(domain.RequestContext{}, apperrors.NewNotFoundError("company not found")).Once()

	w := suite.do(http.MethodGet, "/accounts", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}
