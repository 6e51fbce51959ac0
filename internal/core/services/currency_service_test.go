package services_test

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addEUR(t *testing.T, f *fixture) {
	t.Helper()
	_, err := f.svc.Currency.CreateCurrency(f.ctx, f.admin, dto.CreateCurrencyRequest{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"})
	require.NoError(t, err)
	for _, r := range []struct{ rate, date string }{{"1.08", "2024-01-01"}, {"1.10", "2024-03-01"}} {
		_, err := f.svc.Currency.AddExchangeRate(f.ctx, f.admin, dto.CreateExchangeRateRequest{
			CurrencyCode:  "EUR",
			Rate:          decimal.RequireFromString(r.rate),
			DateEffective: r.date,
		})
		require.NoError(t, err)
	}
}

func dtoRate(code, rate, date string) dto.CreateExchangeRateRequest {
	return dto.CreateExchangeRateRequest{CurrencyCode: code, Rate: decimal.RequireFromString(rate), DateEffective: date}
}

func TestResolveRate(t *testing.T) {
	f := newFixture(t, nil)
	addEUR(t, f)

	tests := []struct {
		name string
		code string
		date string
		want string
	}{
		{name: "base currency is always one", code: "USD", date: "1999-01-01", want: "1"},
		{name: "latest rate on or before date", code: "EUR", date: "2024-02-15", want: "1.08"},
		{name: "rate effective on the date itself", code: "EUR", date: "2024-03-01", want: "1.10"},
		{name: "later dates keep the latest rate", code: "EUR", date: "2025-07-01", want: "1.10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := f.svc.Currency.ResolveRate(f.ctx, f.readOnly, tc.code, day(tc.date))
			require.NoError(t, err)
			assertDecimal(t, tc.want, rate)
		})
	}

	_, err := f.svc.Currency.ResolveRate(f.ctx, f.readOnly, "EUR", day("2023-12-31"))
	var noRate *apperrors.NoRateAvailableError
	require.ErrorAs(t, err, &noRate, "never defaults to 1 before the first rate")
	assert.Equal(t, "EUR", noRate.CurrencyCode)

	_, err = f.svc.Currency.ResolveRate(f.ctx, f.readOnly, "GBP", day("2024-02-15"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResolveRate_SameDayLatestWins(t *testing.T) {
	f := newFixture(t, nil)
	addEUR(t, f)
	_, err := f.svc.Currency.AddExchangeRate(f.ctx, f.admin, dto.CreateExchangeRateRequest{
		CurrencyCode: "EUR", Rate: decimal.RequireFromString("1.09"), DateEffective: "2024-01-01",
	})
	require.NoError(t, err)

	rate, err := f.svc.Currency.ResolveRate(f.ctx, f.readOnly, "EUR", day("2024-01-15"))
	require.NoError(t, err)
	assertDecimal(t, "1.09", rate)

	rates, err := f.svc.Currency.ListExchangeRates(f.ctx, f.readOnly, "EUR")
	require.NoError(t, err)
	assert.Len(t, rates, 3)
}

func TestCreateCurrency_SingleBase(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Currency.CreateCurrency(f.ctx, f.admin, dto.CreateCurrencyRequest{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", IsBase: true})
	assert.ErrorIs(t, err, apperrors.ErrState)

	_, err = f.svc.Currency.CreateCurrency(f.ctx, f.admin, dto.CreateCurrencyRequest{CurrencyCode: "USD", Symbol: "$", Name: "Dollar"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = f.svc.Currency.CreateCurrency(f.ctx, f.member, dto.CreateCurrencyRequest{CurrencyCode: "GBP", Symbol: "£", Name: "Pound"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	currencies, err := f.svc.Currency.ListCurrencies(f.ctx, f.readOnly)
	require.NoError(t, err)
	require.Len(t, currencies, 1)
	assert.True(t, currencies[0].IsBase)
}

func TestAddExchangeRate_Validation(t *testing.T) {
	f := newFixture(t, nil)
	addEUR(t, f)

	tests := []struct {
		name string
		req  dto.CreateExchangeRateRequest
	}{
		{name: "zero rate", req: dto.CreateExchangeRateRequest{CurrencyCode: "EUR", Rate: decimal.Zero, DateEffective: "2024-05-01"}},
		{name: "negative rate", req: dto.CreateExchangeRateRequest{CurrencyCode: "EUR", Rate: decimal.NewFromInt(-1), DateEffective: "2024-05-01"}},
		{name: "base currency", req: dto.CreateExchangeRateRequest{CurrencyCode: "USD", Rate: decimal.NewFromInt(1), DateEffective: "2024-05-01"}},
		{name: "unknown currency", req: dto.CreateExchangeRateRequest{CurrencyCode: "JPY", Rate: decimal.NewFromInt(150), DateEffective: "2024-05-01"}},
		{name: "missing date", req: dto.CreateExchangeRateRequest{CurrencyCode: "EUR", Rate: decimal.NewFromInt(1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Currency.AddExchangeRate(f.ctx, f.admin, tc.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestUpdateCurrency_RefusedOnceReferenced(t *testing.T) {
	f := newFixture(t, nil)
	addEUR(t, f)
	f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")
	cash := f.account(t, "1000", domain.Asset)
	sales := f.account(t, "4000", domain.Revenue)

	updated, err := f.svc.Currency.UpdateCurrency(f.ctx, f.admin, "EUR", dto.UpdateCurrencyRequest{Name: ptr("Euro (EU)")})
	require.NoError(t, err)
	assert.Equal(t, "Euro (EU)", updated.Name)

	draft := f.draft("2024-04-01", dr(cash, "10"), cr(sales, "10"))
	draft.CurrencyCode = "EUR"
	_, err = f.svc.Ledger.PostVoucher(f.ctx, f.member, draft)
	require.NoError(t, err)

	_, err = f.svc.Currency.UpdateCurrency(f.ctx, f.admin, "EUR", dto.UpdateCurrencyRequest{Symbol: ptr("EUR")})
	assert.ErrorIs(t, err, apperrors.ErrState)

	_, err = f.svc.Currency.UpdateCurrency(f.ctx, f.admin, "CHF", dto.UpdateCurrencyRequest{Symbol: ptr("Fr")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
