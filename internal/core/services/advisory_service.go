package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// DefaultAdvisoryTimeout bounds a single insight request.
const DefaultAdvisoryTimeout = 20 * time.Second

type advisoryService struct {
	BaseService
	reporting portssvc.ReportingService
	advisor   portssvc.Advisor
	timeout   time.Duration
}

// NewAdvisoryService creates the insight service. A nil advisor makes every request unavailable.
func NewAdvisoryService(base BaseService, reporting portssvc.ReportingService, advisor portssvc.Advisor, timeout time.Duration) portssvc.AdvisoryService {
	if timeout <= 0 {
		timeout = DefaultAdvisoryTimeout
	}
	return &advisoryService{BaseService: base, reporting: reporting, advisor: advisor, timeout: timeout}
}

var _ portssvc.AdvisoryService = (*advisoryService)(nil)

type insightContext struct {
	Summary       *domain.LedgerSummary `json:"summary"`
	ProfitAndLoss *domain.PAndLReport   `json:"profitAndLoss"`
}

// Insights sends the ledger summary and P&L to the advisor and returns its commentary
// alongside the summary it was given. The ledger is never modified.
func (s *advisoryService) Insights(ctx context.Context, rc domain.RequestContext) (*domain.LedgerSummary, string, error) {
	if err := s.Authorize(ctx, rc, domain.ActionRequestInsights); err != nil {
		return nil, "", err
	}

	summary, err := s.reporting.LedgerSummary(ctx, rc)
	if err != nil {
		return nil, "", err
	}
	pnl, err := s.reporting.ProfitAndLoss(ctx, rc, domain.ReportQuery{})
	if err != nil {
		return nil, "", err
	}
	if s.advisor == nil {
		return summary, "", apperrors.Unavailable("advisory service", errors.New("no advisor configured"))
	}

	blob, err := json.Marshal(insightContext{Summary: summary, ProfitAndLoss: pnl})
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to serialize ledger summary: %v", apperrors.ErrInternal, err)
	}

	adviseCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	started := s.Now()
	text, err := s.advisor.Advise(adviseCtx, string(blob))
	if err != nil {
		s.LogError(ctx, err, "Advisory request failed", slog.Duration("elapsed", s.Now().Sub(started)))
		if errors.Is(err, apperrors.ErrUnavailable) {
			return summary, "", err
		}
		return summary, "", apperrors.Unavailable("advisory service", err)
	}

	s.LogInfo(ctx, "Advisory insights generated", slog.Int("length", len(text)))
	return summary, text, nil
}
