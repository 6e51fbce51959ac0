package services_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	f *fixture
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.f = newFixture(s.T(), nil)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func ptr(s string) *string { return &s }

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	f := s.f
	parentID := f.account(s.T(), "1000", domain.Asset)

	acc, err := f.svc.Account.CreateAccount(f.ctx, f.admin, dto.CreateAccountRequest{
		Code:            "1100",
		Name:            "Cash",
		AccountType:     domain.Asset,
		ParentAccountID: &parentID,
	})
	s.Require().NoError(err)
	s.Equal(parentID, acc.ParentAccountID)
	s.Equal(f.company.CompanyID, acc.CompanyID)
	s.Equal(adminUserID, acc.CreatedBy)

	got, err := f.svc.Account.GetAccountByID(f.ctx, f.readOnly, acc.AccountID)
	s.Require().NoError(err)
	s.Equal("Cash", got.Name)
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	f := s.f
	f.account(s.T(), "1000", domain.Asset)

	_, err := f.svc.Account.CreateAccount(f.ctx, f.admin, dto.CreateAccountRequest{Code: "1000", Name: "Other", AccountType: domain.Expense})
	var dup *apperrors.DuplicateCodeError
	s.Require().ErrorAs(err, &dup)
	s.Equal("1000", dup.Code)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AccountServiceTestSuite) TestCreateAccount_DeletedAccountKeepsCode() {
	f := s.f
	id := f.account(s.T(), "1000", domain.Asset)
	s.Require().NoError(f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityAccount, id))

	_, err := f.svc.Account.CreateAccount(f.ctx, f.admin, dto.CreateAccountRequest{Code: "1000", Name: "Reuse", AccountType: domain.Asset})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AccountServiceTestSuite) TestCreateAccount_Validation() {
	f := s.f
	tests := []struct {
		name string
		req  dto.CreateAccountRequest
	}{
		{name: "missing code", req: dto.CreateAccountRequest{Name: "Cash", AccountType: domain.Asset}},
		{name: "bad type", req: dto.CreateAccountRequest{Code: "1", Name: "Cash", AccountType: "CASH"}},
		{name: "missing parent", req: dto.CreateAccountRequest{Code: "1", Name: "Cash", AccountType: domain.Asset, ParentAccountID: ptr("nope")}},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := f.svc.Account.CreateAccount(f.ctx, f.admin, tc.req)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (s *AccountServiceTestSuite) TestCreateAccount_Forbidden() {
	f := s.f
	_, err := f.svc.Account.CreateAccount(f.ctx, f.member, dto.CreateAccountRequest{Code: "1", Name: "Cash", AccountType: domain.Asset})
	s.ErrorIs(err, apperrors.ErrForbidden)

	accounts, err := f.svc.Account.ListAccounts(f.ctx, f.admin, true)
	s.Require().NoError(err)
	s.Empty(accounts)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_RejectsCycles() {
	f := s.f
	a := f.account(s.T(), "1000", domain.Asset)
	b, err := f.svc.Account.CreateAccount(f.ctx, f.admin, dto.CreateAccountRequest{Code: "1100", Name: "B", AccountType: domain.Asset, ParentAccountID: &a})
	s.Require().NoError(err)
	c, err := f.svc.Account.CreateAccount(f.ctx, f.admin, dto.CreateAccountRequest{Code: "1110", Name: "C", AccountType: domain.Asset, ParentAccountID: &b.AccountID})
	s.Require().NoError(err)

	_, err = f.svc.Account.UpdateAccount(f.ctx, f.admin, a, dto.UpdateAccountRequest{ParentAccountID: &c.AccountID})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = f.svc.Account.UpdateAccount(f.ctx, f.admin, a, dto.UpdateAccountRequest{ParentAccountID: &a})
	s.ErrorIs(err, apperrors.ErrValidation)

	// Detaching is always allowed.
	updated, err := f.svc.Account.UpdateAccount(f.ctx, f.admin, c.AccountID, dto.UpdateAccountRequest{ParentAccountID: ptr("")})
	s.Require().NoError(err)
	s.Empty(updated.ParentAccountID)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_Code() {
	f := s.f
	a := f.account(s.T(), "1000", domain.Asset)
	f.account(s.T(), "2000", domain.Liability)

	_, err := f.svc.Account.UpdateAccount(f.ctx, f.admin, a, dto.UpdateAccountRequest{Code: ptr("2000")})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	updated, err := f.svc.Account.UpdateAccount(f.ctx, f.admin, a, dto.UpdateAccountRequest{Code: ptr("1001"), Name: ptr("Petty cash")})
	s.Require().NoError(err)
	s.Equal("1001", updated.Code)
	s.Equal("Petty cash", updated.Name)

	_, err = f.svc.Account.UpdateAccount(f.ctx, f.admin, "missing", dto.UpdateAccountRequest{Name: ptr("x")})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestListAccounts_IncludeDeleted(t *testing.T) {
	f := newFixture(t, nil)
	keep := f.account(t, "1000", domain.Asset)
	drop := f.account(t, "2000", domain.Liability)
	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityAccount, drop))

	live, err := f.svc.Account.ListAccounts(f.ctx, f.readOnly, false)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, keep, live[0].AccountID)

	all, err := f.svc.Account.ListAccounts(f.ctx, f.readOnly, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.svc.Account.ListAccounts(f.ctx, domain.RequestContext{}, false)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
