package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherLineRequest is one debit or credit line of a posting request.
type VoucherLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Notes     string          `json:"notes"`
}

// PostVoucherRequest defines the data needed to post a voucher.
// FiscalYearID defaults to the active fiscal year and CurrencyCode to the base currency.
type PostVoucherRequest struct {
	Reference    string               `json:"reference" binding:"required"`
	Description  string               `json:"description"`
	VoucherDate  string               `json:"voucherDate" binding:"required,datetime=2006-01-02"`
	FiscalYearID string               `json:"fiscalYearID"`
	CurrencyCode string               `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
	Lines        []VoucherLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToVoucherDraft converts the request into the posting engine's input.
func (r PostVoucherRequest) ToVoucherDraft() (domain.VoucherDraft, error) {
	date, err := ParseDate("voucherDate", r.VoucherDate)
	if err != nil {
		return domain.VoucherDraft{}, err
	}
	draft := domain.VoucherDraft{
		Reference:    r.Reference,
		Description:  r.Description,
		VoucherDate:  date,
		FiscalYearID: r.FiscalYearID,
		CurrencyCode: r.CurrencyCode,
		Lines:        make([]domain.DraftLine, len(r.Lines)),
	}
	for i, l := range r.Lines {
		draft.Lines[i] = domain.DraftLine{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit, Notes: l.Notes}
	}
	return draft, nil
}

// JournalEntryResponse defines the data returned for a voucher line.
type JournalEntryResponse struct {
	EntryID   string          `json:"entryID"`
	LineNo    int             `json:"lineNo"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Notes     string          `json:"notes,omitempty"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID    string                 `json:"voucherID"`
	Reference    string                 `json:"reference"`
	Description  string                 `json:"description"`
	VoucherDate  string                 `json:"voucherDate"`
	FiscalYearID string                 `json:"fiscalYearID"`
	CurrencyCode string                 `json:"currencyCode"`
	ExchangeRate decimal.Decimal        `json:"exchangeRate"`
	TotalDebit   decimal.Decimal        `json:"totalDebit"`
	TotalCredit  decimal.Decimal        `json:"totalCredit"`
	Entries      []JournalEntryResponse `json:"entries"`
	IsDeleted    bool                   `json:"isDeleted"`
	DeletedAt    *time.Time             `json:"deletedAt,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
	CreatedBy    string                 `json:"createdBy"`
}

// ToVoucherResponse converts a domain.Voucher to DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	dr, cr := v.Totals()
	res := VoucherResponse{
		VoucherID:    v.VoucherID,
		Reference:    v.Reference,
		Description:  v.Description,
		VoucherDate:  FormatDate(v.VoucherDate),
		FiscalYearID: v.FiscalYearID,
		CurrencyCode: v.CurrencyCode,
		ExchangeRate: v.ExchangeRate,
		TotalDebit:   dr,
		TotalCredit:  cr,
		Entries:      make([]JournalEntryResponse, len(v.Entries)),
		IsDeleted:    v.IsDeleted,
		DeletedAt:    v.DeletedAt,
		CreatedAt:    v.CreatedAt,
		CreatedBy:    v.CreatedBy,
	}
	for i, e := range v.Entries {
		res.Entries[i] = JournalEntryResponse{
			EntryID:   e.EntryID,
			LineNo:    e.LineNo,
			AccountID: e.AccountID,
			Debit:     e.Debit,
			Credit:    e.Credit,
			Notes:     e.Notes,
		}
	}
	return res
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	From           string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To             string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	FiscalYearID   string `form:"fiscalYearID"`
	CurrencyCode   string `form:"currencyCode" binding:"omitempty,len=3"`
	IncludeDeleted bool   `form:"includeDeleted,default=false"`
}

// ListVouchersResponse wraps the list of vouchers.
type ListVouchersResponse struct {
	Vouchers []VoucherResponse `json:"vouchers"`
}

// ToListVouchersResponse converts vouchers to DTOs.
func ToListVouchersResponse(vouchers []domain.Voucher) ListVouchersResponse {
	res := ListVouchersResponse{Vouchers: make([]VoucherResponse, len(vouchers))}
	for i := range vouchers {
		res.Vouchers[i] = ToVoucherResponse(&vouchers[i])
	}
	return res
}
