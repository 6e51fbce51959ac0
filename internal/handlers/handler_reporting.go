package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	advisoryService  portssvc.AdvisoryService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, as portssvc.AdvisoryService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		advisoryService:  as,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, advisoryService portssvc.AdvisoryService) {
	h := newReportingHandler(reportingService, advisoryService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/summary", h.getLedgerSummary)
	}
	rg.GET("/insights", h.getInsights)
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Sums debits and credits per account over posted vouchers in the period.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Param fiscalYearID query string false "Restrict to one fiscal year"
// @Param includeDeleted query bool false "Include soft-deleted vouchers"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	query, err := params.ToReportQuery()
	if err != nil {
		respondError(c, err, "generate trial balance")
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), rc, query)
	if err != nil {
		respondError(c, err, "generate trial balance")
		return
	}
	if !report.IsBalanced {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()), slog.String("total_credit", report.TotalCredit.String()))
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report, query.From, query.To))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Param fiscalYearID query string false "Restrict to one fiscal year"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	query, err := params.ToReportQuery()
	if err != nil {
		respondError(c, err, "generate profit and loss report")
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), rc, query)
	if err != nil {
		respondError(c, err, "generate profit and loss report")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report, query.From, query.To))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Cumulative balances as of a date. Current-period earnings are shown as an equity line.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string true "Report date (YYYY-MM-DD)"
// @Param fiscalYearID query string false "Restrict to one fiscal year"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.BalanceSheetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	asOf, err := dto.ParseDate("asOf", params.AsOf)
	if err != nil {
		respondError(c, err, "generate balance sheet")
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), rc, asOf, params.FiscalYearID)
	if err != nil {
		respondError(c, err, "generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getLedgerSummary godoc
// @Summary Ledger summary
// @Description Headline totals and voucher count in base currency.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} domain.LedgerSummary
// @Security BearerAuth
// @Router /companies/{company_id}/reports/summary [get]
func (h *reportingHandler) getLedgerSummary(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.LedgerSummary(c.Request.Context(), rc)
	if err != nil {
		respondError(c, err, "generate ledger summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getInsights godoc
// @Summary AI commentary on the ledger
// @Description Advisory only. When the advisor is unavailable the summary is still returned with a 503.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.InsightResponse
// @Failure 503 {object} map[string]interface{} "Advisor unavailable"
// @Security BearerAuth
// @Router /companies/{company_id}/insights [get]
func (h *reportingHandler) getInsights(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	summary, text, err := h.advisoryService.Insights(c.Request.Context(), rc)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnavailable) && summary != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Insights unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Insights are temporarily unavailable", "summary": summary})
			return
		}
		respondError(c, err, "generate insights")
		return
	}
	c.JSON(http.StatusOK, dto.InsightResponse{Summary: *summary, Insights: text})
}
