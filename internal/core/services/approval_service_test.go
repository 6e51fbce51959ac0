package services_test

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/suite"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	f         *fixture
	voucherID string
}

func (s *ApprovalServiceTestSuite) SetupTest() {
	f := newFixture(s.T(), nil)
	f.fiscalYear(s.T(), "FY2024", "2024-01-01", "2024-12-31")
	cash := f.account(s.T(), "1000", domain.Asset)
	sales := f.account(s.T(), "4000", domain.Revenue)
	s.f = f
	s.voucherID = f.post(s.T(), "2024-02-01", dr(cash, "100"), cr(sales, "100")).VoucherID
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}

func (s *ApprovalServiceTestSuite) request(level int) *domain.Approval {
	a, err := s.f.svc.Approval.Request(s.f.ctx, s.f.member, domain.EntityVoucher, s.voucherID, level, "")
	s.Require().NoError(err)
	s.Equal(domain.ApprovalPending, a.Status)
	return a
}

func (s *ApprovalServiceTestSuite) TestSequentialLevels() {
	f := s.f
	l1 := s.request(1)
	l2 := s.request(2)

	_, err := f.svc.Approval.Approve(f.ctx, f.admin, l2.ApprovalID, "")
	s.ErrorIs(err, apperrors.ErrState, "level 2 waits for level 1")

	got, err := f.svc.Approval.Approve(f.ctx, f.admin, l1.ApprovalID, "looks right")
	s.Require().NoError(err)
	s.True(got.Approved())
	s.Equal(adminUserID, got.DecidedBy)
	s.NotNil(got.DecidedAt)
	s.Equal("looks right", got.Notes)

	got, err = f.svc.Approval.Approve(f.ctx, f.admin, l2.ApprovalID, "")
	s.Require().NoError(err)
	s.True(got.Approved())

	_, err = f.svc.Approval.Approve(f.ctx, f.admin, l1.ApprovalID, "")
	s.ErrorIs(err, apperrors.ErrState, "a decision is final")

	all, err := f.svc.Approval.List(f.ctx, f.readOnly, portsrepo.ApprovalFilter{EntityID: s.voucherID})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *ApprovalServiceTestSuite) TestRejectionBlocksTheChain() {
	f := s.f
	l1 := s.request(1)
	l2 := s.request(2)

	got, err := f.svc.Approval.Reject(f.ctx, f.admin, l1.ApprovalID, "wrong account")
	s.Require().NoError(err)
	s.True(got.Rejected())

	_, err = f.svc.Approval.Approve(f.ctx, f.admin, l2.ApprovalID, "")
	s.ErrorIs(err, apperrors.ErrState)

	_, err = f.svc.Approval.Request(f.ctx, f.member, domain.EntityVoucher, s.voucherID, 3, "")
	s.ErrorIs(err, apperrors.ErrState)

	rejected, err := f.svc.Approval.List(f.ctx, f.readOnly, portsrepo.ApprovalFilter{Status: domain.ApprovalRejected})
	s.Require().NoError(err)
	s.Len(rejected, 1)
}

func (s *ApprovalServiceTestSuite) TestRequestValidation() {
	f := s.f
	s.request(1)

	_, err := f.svc.Approval.Request(f.ctx, f.member, domain.EntityVoucher, s.voucherID, 1, "")
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = f.svc.Approval.Request(f.ctx, f.member, domain.EntityVoucher, s.voucherID, 0, "")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = f.svc.Approval.Request(f.ctx, f.member, domain.EntityVoucher, "missing", 1, "")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = f.svc.Approval.Request(f.ctx, f.readOnly, domain.EntityVoucher, s.voucherID, 2, "")
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ApprovalServiceTestSuite) TestMemberCannotDecide() {
	f := s.f
	l1 := s.request(1)

	_, err := f.svc.Approval.Approve(f.ctx, f.member, l1.ApprovalID, "")
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = f.svc.Approval.Reject(f.ctx, f.member, l1.ApprovalID, "")
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = f.svc.Approval.Approve(f.ctx, f.admin, "missing", "")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ApprovalServiceTestSuite) TestDecisionsAreAudited() {
	f := s.f
	l1 := s.request(1)
	_, err := f.svc.Approval.Approve(f.ctx, f.admin, l1.ApprovalID, "")
	s.Require().NoError(err)

	s.Equal(
		[]domain.AuditAction{domain.AuditCreate, domain.AuditApprove},
		auditActions(s.T(), f, domain.EntityApproval, l1.ApprovalID))
}

func (s *ApprovalServiceTestSuite) TestExchangeRateApproval() {
	f := s.f
	addEUR(s.T(), f)
	rates, err := f.svc.Currency.ListExchangeRates(f.ctx, f.readOnly, "EUR")
	s.Require().NoError(err)
	s.Require().NotEmpty(rates)

	a, err := f.svc.Approval.Request(f.ctx, f.member, domain.EntityExchangeRate, rates[0].ExchangeRateID, 1, "")
	s.Require().NoError(err)
	s.Equal(domain.EntityExchangeRate, a.EntityKind)

	_, err = f.svc.Approval.Request(f.ctx, f.member, domain.EntityExchangeRate, "missing", 1, "")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
