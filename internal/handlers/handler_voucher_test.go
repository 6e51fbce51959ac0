package handlers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func voucherBody(debit, credit string) map[string]any {
	return map[string]any{
		"reference":   "JV-1",
		"voucherDate": "2024-05-10",
		"lines": []map[string]any{
			{"accountID": "cash", "debit": debit},
			{"accountID": "sales", "credit": credit},
		},
	}
}

func (suite *HandlerTestSuite) TestPostVoucher_Success() {
	suite.expectMember()
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	posted := &domain.Voucher{
		VoucherID:    "v-1",
		CompanyID:    suite.companyID,
		Reference:    "JV-1",
		VoucherDate:  date,
		FiscalYearID: "fy-2024",
		CurrencyCode: "USD",
		ExchangeRate: decimal.NewFromInt(1),
		Entries: []domain.JournalEntry{
			{EntryID: "e-1", VoucherID: "v-1", LineNo: 1, AccountID: "cash", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			{EntryID: "e-2", VoucherID: "v-1", LineNo: 2, AccountID: "sales", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		},
	}
	suite.mockLedgerService.On("PostVoucher", mock.Anything, suite.rc,
		mock.MatchedBy(func(d domain.VoucherDraft) bool {
			return d.Reference == "JV-1" && d.VoucherDate.Equal(date) && len(d.Lines) == 2 &&
				d.Lines[0].Debit.Equal(decimal.NewFromInt(100)) && d.Lines[1].Credit.Equal(decimal.NewFromInt(100))
		}),
	).Return(posted, nil).Once()

	w := suite.do(http.MethodPost, "/vouchers", voucherBody("100", "100"))

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("v-1", body["voucherID"])
	suite.Equal("2024-05-10", body["voucherDate"])
	suite.Equal("100", body["totalDebit"])
	suite.Equal("100", body["totalCredit"])
}

func (suite *HandlerTestSuite) TestPostVoucher_UnbalancedReportsTotals() {
	suite.expectMember()
	suite.mockLedgerService.On("PostVoucher", mock.Anything, suite.rc, mock.Anything).
		Return(nil, &apperrors.UnbalancedEntryError{TotalDebit: decimal.NewFromInt(100), TotalCredit: decimal.NewFromInt(90)}).Once()

	w := suite.do(http.MethodPost, "/vouchers", voucherBody("100", "90"))

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal("100", body["totalDebit"])
	suite.Equal("90", body["totalCredit"])
	suite.Contains(body["error"], "unbalanced")
}

func (suite *HandlerTestSuite) TestPostVoucher_ClosedFiscalYear() {
	suite.expectMember()
	suite.mockLedgerService.On("PostVoucher", mock.Anything, suite.rc, mock.Anything).
		Return(nil, &apperrors.ClosedPeriodError{FiscalYearID: "fy-2023", Date: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)}).Once()

	w := suite.do(http.MethodPost, "/vouchers", voucherBody("100", "100"))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPostVoucher_TooFewLines() {
	suite.expectMember()
	body := voucherBody("100", "100")
	body["lines"] = body["lines"].([]map[string]any)[:1]

	w := suite.do(http.MethodPost, "/vouchers", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "PostVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostVoucher_StoreUnavailable() {
	suite.expectMember()
	suite.mockLedgerService.On("PostVoucher", mock.Anything, suite.rc, mock.Anything).
		Return(nil, apperrors.Unavailable("post voucher", context.DeadlineExceeded)).Once()

	w := suite.do(http.MethodPost, "/vouchers", voucherBody("100", "100"))

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestListVouchers_FilterFromQuery() {
	suite.expectMember()
	suite.mockLedgerService.On("ListVouchers", mock.Anything, suite.rc,
		mock.MatchedBy(func(f repositories.VoucherFilter) bool {
			return f.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) && f.To.IsZero() && f.CurrencyCode == "EUR"
		}),
	).Return([]domain.Voucher{}, nil).Once()

	w := suite.do(http.MethodGet, "/vouchers?from=2024-01-01&currencyCode=EUR", nil)

	suite.Equal(http.StatusOK, w.Code)
}
