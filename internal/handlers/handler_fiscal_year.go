package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type fiscalYearHandler struct {
	fiscalYearService portssvc.FiscalYearSvcFacade
}

func registerFiscalYearRoutes(rg *gin.RouterGroup, fiscalYearService portssvc.FiscalYearSvcFacade) {
	h := &fiscalYearHandler{fiscalYearService: fiscalYearService}

	years := rg.Group("/fiscal-years")
	{
		years.POST("", h.createFiscalYear)
		years.GET("", h.listFiscalYears)
		years.GET("/active", h.getActiveFiscalYear)
		years.POST("/:fiscal_year_id/close", h.closeFiscalYear)
	}
}

// createFiscalYear godoc
// @Summary Open a fiscal year
// @Description Only one fiscal year may be open at a time.
// @Tags fiscal-years
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   fiscalYear body dto.CreateFiscalYearRequest true "Fiscal year"
// @Success 201 {object} dto.FiscalYearResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Another fiscal year is open"
// @Security BearerAuth
// @Router /companies/{company_id}/fiscal-years [post]
func (h *fiscalYearHandler) createFiscalYear(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.CreateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	fy, err := h.fiscalYearService.CreateFiscalYear(c.Request.Context(), rc, req)
	if err != nil {
		respondError(c, err, "create fiscal year")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Fiscal year created", slog.String("fiscal_year_id", fy.FiscalYearID))
	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(fy))
}

// listFiscalYears godoc
// @Summary List fiscal years
// @Tags fiscal-years
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   includeDeleted query bool false "Include soft-deleted fiscal years"
// @Success 200 {array} dto.FiscalYearResponse
// @Security BearerAuth
// @Router /companies/{company_id}/fiscal-years [get]
func (h *fiscalYearHandler) listFiscalYears(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	years, err := h.fiscalYearService.ListFiscalYears(c.Request.Context(), rc, params.IncludeDeleted)
	if err != nil {
		respondError(c, err, "list fiscal years")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFiscalYearResponse(years))
}

// getActiveFiscalYear godoc
// @Summary Get the open fiscal year
// @Tags fiscal-years
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 404 {object} map[string]string "No open fiscal year"
// @Security BearerAuth
// @Router /companies/{company_id}/fiscal-years/active [get]
func (h *fiscalYearHandler) getActiveFiscalYear(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	fy, err := h.fiscalYearService.GetActiveFiscalYear(c.Request.Context(), rc)
	if err != nil {
		respondError(c, err, "get active fiscal year")
		return
	}
	if fy == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open fiscal year"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// closeFiscalYear godoc
// @Summary Close a fiscal year
// @Description Closing is terminal; vouchers can no longer be posted into the year.
// @Tags fiscal-years
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   fiscal_year_id path string true "Fiscal year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Already closed"
// @Security BearerAuth
// @Router /companies/{company_id}/fiscal-years/{fiscal_year_id}/close [post]
func (h *fiscalYearHandler) closeFiscalYear(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	fiscalYearID := c.Param("fiscal_year_id")
	fy, err := h.fiscalYearService.CloseFiscalYear(c.Request.Context(), rc, fiscalYearID)
	if err != nil {
		respondError(c, err, "close fiscal year")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Fiscal year closed", slog.String("fiscal_year_id", fiscalYearID))
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}
