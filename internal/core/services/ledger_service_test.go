package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	f       *fixture
	fyID    string
	cash    string
	sales   string
	expense string
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.f = newFixture(s.T(), nil)
	s.fyID = s.f.fiscalYear(s.T(), "FY2024", "2024-01-01", "2024-12-31")
	s.cash = s.f.account(s.T(), "1000", domain.Asset)
	s.sales = s.f.account(s.T(), "4000", domain.Revenue)
	s.expense = s.f.account(s.T(), "5000", domain.Expense)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) vouchers() []domain.Voucher {
	vouchers, err := s.f.svc.Ledger.ListVouchers(s.f.ctx, s.f.readOnly, portsrepo.VoucherFilter{})
	s.Require().NoError(err)
	return vouchers
}

func (s *LedgerServiceTestSuite) TestPostVoucher_Balanced() {
	f := s.f
	v, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-02-10", dr(s.cash, "100"), cr(s.sales, "100")))
	s.Require().NoError(err)

	s.Equal(s.fyID, v.FiscalYearID, "defaults to the active fiscal year")
	s.Equal("USD", v.CurrencyCode, "defaults to the base currency")
	assertDecimal(s.T(), "1", v.ExchangeRate)
	s.Require().Len(v.Entries, 2)
	s.Equal(1, v.Entries[0].LineNo)
	s.Equal(v.VoucherID, v.Entries[1].VoucherID)

	stored, err := f.svc.Ledger.GetVoucher(f.ctx, f.readOnly, v.VoucherID)
	s.Require().NoError(err)
	debit, credit := stored.Totals()
	assertDecimal(s.T(), "100", debit)
	assertDecimal(s.T(), "100", credit)

	logs, _, err := f.svc.Audit.List(f.ctx, f.readOnly, portsrepo.AuditFilter{EntityKind: domain.EntityVoucher, EntityID: v.VoucherID}, nil)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(domain.AuditPost, logs[0].Action)
	s.Equal(memberUserID, logs[0].ActorID)
}

func (s *LedgerServiceTestSuite) TestPostVoucher_Unbalanced() {
	f := s.f
	_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-02-10", dr(s.cash, "100"), cr(s.sales, "90")))

	var unbalanced *apperrors.UnbalancedEntryError
	s.Require().ErrorAs(err, &unbalanced)
	assertDecimal(s.T(), "100", unbalanced.TotalDebit)
	assertDecimal(s.T(), "90", unbalanced.TotalCredit)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Empty(s.vouchers(), "nothing is persisted")
}

func (s *LedgerServiceTestSuite) TestPostVoucher_ExactDecimalComparison() {
	f := s.f
	_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-02-10",
		dr(s.cash, "0.1"), dr(s.cash, "0.2"), cr(s.sales, "0.3")))
	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestPostVoucher_LineShape() {
	f := s.f
	both := domain.DraftLine{AccountID: s.cash, Debit: decimal.NewFromInt(5), Credit: decimal.NewFromInt(5)}
	zero := domain.DraftLine{AccountID: s.sales}

	tests := []struct {
		name  string
		lines []domain.DraftLine
		line  int
	}{
		{name: "both sides", lines: []domain.DraftLine{both, cr(s.sales, "5")}, line: 0},
		{name: "neither side", lines: []domain.DraftLine{dr(s.cash, "5"), zero}, line: 1},
		{name: "negative amount", lines: []domain.DraftLine{dr(s.cash, "-5"), cr(s.sales, "-5")}, line: 0},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-02-10", tc.lines...))
			var invalid *apperrors.InvalidLineError
			s.Require().ErrorAs(err, &invalid)
			s.Equal(tc.line, invalid.Line)
		})
	}

	_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-02-10", dr(s.cash, "5")))
	s.ErrorIs(err, apperrors.ErrValidation, "a single line is rejected")
}

func (s *LedgerServiceTestSuite) TestPostVoucher_UnknownAndDeletedAccounts() {
	f := s.f
	_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-02-10", dr(s.cash, "5"), cr("ghost", "5")))
	var unknown *apperrors.UnknownAccountError
	s.Require().ErrorAs(err, &unknown)
	s.Equal(1, unknown.Line)
	s.False(unknown.Deleted)

	s.Require().NoError(f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityAccount, s.sales))
	_, err = f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-02-10", dr(s.cash, "5"), cr(s.sales, "5")))
	s.Require().ErrorAs(err, &unknown)
	s.True(unknown.Deleted)
}

func (s *LedgerServiceTestSuite) TestPostVoucher_ClosedAndOutOfRange() {
	f := s.f
	_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2025-01-02", dr(s.cash, "5"), cr(s.sales, "5")))
	var outOfRange *apperrors.OutOfRangeError
	s.Require().ErrorAs(err, &outOfRange)

	_, err = f.svc.FiscalYear.CloseFiscalYear(f.ctx, f.admin, s.fyID)
	s.Require().NoError(err)

	// The period check runs before the balance check.
	draft := f.draft("2024-06-30", dr(s.cash, "100"), cr(s.sales, "90"))
	draft.FiscalYearID = s.fyID
	_, err = f.svc.Ledger.PostVoucher(f.ctx, f.member, draft)
	var closed *apperrors.ClosedPeriodError
	s.Require().ErrorAs(err, &closed)
	s.Equal(s.fyID, closed.FiscalYearID)

	_, err = f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-06-30", dr(s.cash, "5"), cr(s.sales, "5")))
	s.ErrorIs(err, apperrors.ErrState, "no open fiscal year to default to")
	s.Empty(s.vouchers())
}

func (s *LedgerServiceTestSuite) TestPostVoucher_ForeignCurrencyFreezesRate() {
	f := s.f
	addEUR(s.T(), f)

	draft := f.draft("2024-02-15", dr(s.cash, "100"), cr(s.sales, "100"))
	draft.CurrencyCode = "EUR"
	v, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, draft)
	s.Require().NoError(err)
	assertDecimal(s.T(), "1.08", v.ExchangeRate)

	// A later rate does not restate the posted voucher.
	_, err = f.svc.Currency.AddExchangeRate(f.ctx, f.admin, dtoRate("EUR", "2.00", "2024-02-01"))
	s.Require().NoError(err)
	stored, err := f.svc.Ledger.GetVoucher(f.ctx, f.readOnly, v.VoucherID)
	s.Require().NoError(err)
	assertDecimal(s.T(), "1.08", stored.ExchangeRate)

	early := f.draft("2024-01-01", dr(s.cash, "1"), cr(s.sales, "1"))
	early.CurrencyCode = "EUR"
	_, err = f.svc.Ledger.PostVoucher(f.ctx, f.member, early)
	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestPostVoucher_NoRateAvailable() {
	f := s.f
	addEUR(s.T(), f)
	s.Require().NoError(f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityFiscalYear, s.fyID))
	fy := f.fiscalYear(s.T(), "FY2023", "2023-01-01", "2023-12-31")

	draft := f.draft("2023-12-31", dr(s.cash, "1"), cr(s.sales, "1"))
	draft.CurrencyCode = "EUR"
	draft.FiscalYearID = fy
	_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, draft)
	var noRate *apperrors.NoRateAvailableError
	s.Require().ErrorAs(err, &noRate)
}

func (s *LedgerServiceTestSuite) TestPostVoucher_Forbidden() {
	f := s.f
	_, err := f.svc.Ledger.PostVoucher(f.ctx, f.readOnly, f.draft("2024-02-10", dr(s.cash, "5"), cr(s.sales, "5")))
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LedgerServiceTestSuite) TestPostVoucher_CanceledContext() {
	f := s.f
	ctx, cancel := context.WithCancel(f.ctx)
	cancel()
	_, err := f.svc.Ledger.PostVoucher(ctx, f.member, f.draft("2024-02-10", dr(s.cash, "5"), cr(s.sales, "5")))
	s.ErrorIs(err, apperrors.ErrUnavailable)
	s.Empty(s.vouchers())
}

func (s *LedgerServiceTestSuite) TestPostVoucher_Concurrent() {
	f := s.f
	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := fmt.Sprintf("%d.25", i+1)
			_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft("2024-03-01", dr(s.cash, amount), cr(s.sales, amount)))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	s.Len(s.vouchers(), n)
	tb, err := f.svc.Reporting.TrialBalance(f.ctx, f.readOnly, domain.ReportQuery{})
	s.Require().NoError(err)
	s.True(tb.IsBalanced)
}

func (s *LedgerServiceTestSuite) TestPostVoucher_ConcurrentWithClose() {
	f := s.f
	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			amount := fmt.Sprintf("%d.50", i+1)
			draft := f.draft("2024-04-01", dr(s.cash, amount), cr(s.sales, amount))
			draft.FiscalYearID = s.fyID
			_, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, draft)
			errs <- err
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		_, err := f.svc.FiscalYear.CloseFiscalYear(f.ctx, f.admin, s.fyID)
		s.NoError(err)
	}()
	close(start)
	wg.Wait()
	close(errs)

	posted := 0
	for err := range errs {
		if err == nil {
			posted++
			continue
		}
		var closed *apperrors.ClosedPeriodError
		s.True(errors.As(err, &closed), "unexpected error: %v", err)
	}
	s.Len(s.vouchers(), posted)

	// Every committed voucher is audited before the close.
	entries, err := f.store.Reader().ListAuditLogs(f.ctx, f.company.CompanyID, portsrepo.AuditFilter{})
	s.Require().NoError(err)
	var closeSeq int64
	for _, e := range entries {
		if e.Action == domain.AuditClose && e.EntityID == s.fyID {
			closeSeq = e.Sequence
		}
	}
	s.Require().NotZero(closeSeq)
	posts := 0
	for _, e := range entries {
		if e.Action == domain.AuditPost {
			posts++
			s.Less(e.Sequence, closeSeq)
		}
	}
	s.Equal(posted, posts)

	late := f.draft("2024-04-02", dr(s.cash, "1"), cr(s.sales, "1"))
	late.FiscalYearID = s.fyID
	_, err = f.svc.Ledger.PostVoucher(f.ctx, f.member, late)
	var closed *apperrors.ClosedPeriodError
	s.True(errors.As(err, &closed))
}

func (s *LedgerServiceTestSuite) TestListVouchers_Filters() {
	f := s.f
	f.post(s.T(), "2024-01-15", dr(s.cash, "10"), cr(s.sales, "10"))
	feb := f.post(s.T(), "2024-02-15", dr(s.expense, "4"), cr(s.cash, "4"))
	f.post(s.T(), "2024-03-15", dr(s.cash, "7"), cr(s.sales, "7"))

	got, err := f.svc.Ledger.ListVouchers(f.ctx, f.readOnly, portsrepo.VoucherFilter{From: day("2024-02-01"), To: day("2024-02-29")})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(feb.VoucherID, got[0].VoucherID)

	s.Require().NoError(f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityVoucher, feb.VoucherID))
	s.Len(s.vouchers(), 2)
	all, err := f.svc.Ledger.ListVouchers(f.ctx, f.readOnly, portsrepo.VoucherFilter{ListOptions: portsrepo.ListOptions{IncludeDeleted: true}})
	s.Require().NoError(err)
	s.Len(all, 3)

	_, err = f.svc.Ledger.ListVouchers(f.ctx, f.readOnly, portsrepo.VoucherFilter{From: day("2024-03-01"), To: day("2024-02-01")})
	s.ErrorIs(err, apperrors.ErrValidation)
}
