package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedLedger(t *testing.T, f *fixture) {
	t.Helper()
	f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")
	cash := f.account(t, "1000", domain.Asset)
	sales := f.account(t, "4000", domain.Revenue)
	f.post(t, "2024-02-01", dr(cash, "500"), cr(sales, "500"))
}

func TestInsights_Success(t *testing.T) {
	advisor := new(mockAdvisor)
	f := newFixture(t, advisor)
	seedLedger(t, f)

	advisor.On("Advise", mock.Anything, mock.MatchedBy(func(blob string) bool {
		return assert.Contains(t, blob, `"totalRevenue":"500"`) && assert.Contains(t, blob, `"netProfit"`)
	})).Return("Revenue is concentrated in one account.", nil).Once()

	summary, text, err := f.svc.Advisory.Insights(f.ctx, f.readOnly)
	require.NoError(t, err)
	assert.Equal(t, "Revenue is concentrated in one account.", text)
	assertDecimal(t, "500", summary.TotalRevenue)
	advisor.AssertExpectations(t)
}

func TestInsights_AdvisorFailureIsUnavailable(t *testing.T) {
	advisor := new(mockAdvisor)
	f := newFixture(t, advisor)
	seedLedger(t, f)

	advisor.On("Advise", mock.Anything, mock.Anything).Return("", errors.New("connection reset")).Once()

	summary, text, err := f.svc.Advisory.Insights(f.ctx, f.readOnly)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.Empty(t, text)
	require.NotNil(t, summary, "the summary is still returned")

	tb, err := f.svc.Reporting.TrialBalance(f.ctx, f.readOnly, domain.ReportQuery{})
	require.NoError(t, err)
	assert.True(t, tb.IsBalanced)
}

func TestInsights_AdvisorTimeout(t *testing.T) {
	advisor := new(mockAdvisor)
	f := newFixture(t, advisor)

	advisor.On("Advise", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
		}
	}).Return("", context.DeadlineExceeded).Once()

	_, _, err := f.svc.Advisory.Insights(f.ctx, f.readOnly)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestInsights_NoAdvisor(t *testing.T) {
	f := newFixture(t, nil)
	_, _, err := f.svc.Advisory.Insights(f.ctx, f.readOnly)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}
