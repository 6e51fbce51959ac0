package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

func (r *reader) FindCurrencyByCode(ctx context.Context, companyID, currencyCode string) (*domain.Currency, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	c, ok := r.st.currencies[currencyKey{companyID: companyID, code: currencyCode}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *reader) FindBaseCurrency(ctx context.Context, companyID string) (*domain.Currency, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	for k, c := range r.st.currencies {
		if k.companyID == companyID && c.IsBase {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *reader) ListCurrencies(ctx context.Context, companyID string) ([]domain.Currency, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.Currency{}
	for k, c := range r.st.currencies {
		if k.companyID == companyID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}

func (w *writer) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	if err := alive(ctx); err != nil {
		return err
	}
	k := currencyKey{companyID: currency.CompanyID, code: currency.CurrencyCode}
	if _, exists := w.st.currencies[k]; exists {
		return &apperrors.DuplicateCodeError{Entity: "currency", Code: currency.CurrencyCode}
	}
	w.st.currencies[k] = currency
	return nil
}

func (w *writer) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	if err := alive(ctx); err != nil {
		return err
	}
	k := currencyKey{companyID: currency.CompanyID, code: currency.CurrencyCode}
	existing, ok := w.st.currencies[k]
	if !ok {
		return apperrors.ErrNotFound
	}
	existing.Name = currency.Name
	existing.Symbol = currency.Symbol
	existing.LastUpdatedAt = currency.LastUpdatedAt
	existing.LastUpdatedBy = currency.LastUpdatedBy
	w.st.currencies[k] = existing
	return nil
}

func (r *reader) FindEffectiveRate(ctx context.Context, companyID, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	target := domain.DateOnly(date)
	var best *domain.ExchangeRate
	for i := range r.st.rates {
		rate := r.st.rates[i]
		if rate.CompanyID != companyID || rate.CurrencyCode != currencyCode {
			continue
		}
		d := domain.DateOnly(rate.DateEffective)
		if d.After(target) {
			continue
		}
		if best == nil {
			best = &rate
			continue
		}
		bd := domain.DateOnly(best.DateEffective)
		if d.After(bd) || (d.Equal(bd) && rate.Sequence > best.Sequence) {
			best = &rate
		}
	}
	if best == nil {
		return nil, apperrors.ErrNotFound
	}
	return best, nil
}

func (r *reader) FindExchangeRateByID(ctx context.Context, companyID, exchangeRateID string) (*domain.ExchangeRate, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	for _, rate := range r.st.rates {
		if rate.ExchangeRateID == exchangeRateID && rate.CompanyID == companyID {
			return &rate, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *reader) ListExchangeRates(ctx context.Context, companyID, currencyCode string) ([]domain.ExchangeRate, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.ExchangeRate{}
	for _, rate := range r.st.rates {
		if rate.CompanyID == companyID && rate.CurrencyCode == currencyCode {
			out = append(out, rate)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DateEffective.Equal(out[j].DateEffective) {
			return out[i].DateEffective.Before(out[j].DateEffective)
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out, nil
}

func (w *writer) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	rate.Sequence = w.st.nextSeq()
	w.st.rates = append(w.st.rates, rate)
	return &rate, nil
}
