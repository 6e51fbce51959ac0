package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles posting and reading vouchers.
type voucherHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(ls portssvc.LedgerSvcFacade) *voucherHandler {
	return &voucherHandler{ledgerService: ls}
}

// registerVoucherRoutes registers voucher routes on a company-scoped group.
func registerVoucherRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newVoucherHandler(ledgerService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.postVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucher_id", h.getVoucher)
	}
}

// postVoucher godoc
// @Summary Post a voucher
// @Description Validates and posts a balanced voucher into an open fiscal year. Posting is all or nothing.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   voucher body dto.PostVoucherRequest true "Voucher"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Unbalanced, invalid line, unknown account or no rate"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Fiscal year closed"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers [post]
func (h *voucherHandler) postVoucher(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.PostVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	draft, err := req.ToVoucherDraft()
	if err != nil {
		respondError(c, err, "post voucher")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to post voucher", slog.String("reference", req.Reference), slog.Int("lines", len(req.Lines)))

	voucher, err := h.ledgerService.PostVoucher(c.Request.Context(), rc, draft)
	if err != nil {
		respondError(c, err, "post voucher")
		return
	}

	logger.Info("Voucher posted successfully", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Tags vouchers
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   from query string false "YYYY-MM-DD"
// @Param   to query string false "YYYY-MM-DD"
// @Param   fiscalYearID query string false "Fiscal year"
// @Param   currencyCode query string false "Voucher currency"
// @Param   includeDeleted query bool false "Include soft-deleted vouchers"
// @Success 200 {object} dto.ListVouchersResponse
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	from, err := dto.ParseDate("from", params.From)
	if err != nil {
		respondError(c, err, "list vouchers")
		return
	}
	to, err := dto.ParseDate("to", params.To)
	if err != nil {
		respondError(c, err, "list vouchers")
		return
	}

	filter := repositories.VoucherFilter{
		From:         from,
		To:           to,
		FiscalYearID: params.FiscalYearID,
		CurrencyCode: params.CurrencyCode,
		ListOptions:  repositories.ListOptions{IncludeDeleted: params.IncludeDeleted},
	}
	vouchers, err := h.ledgerService.ListVouchers(c.Request.Context(), rc, filter)
	if err != nil {
		respondError(c, err, "list vouchers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVouchersResponse(vouchers))
}

// getVoucher godoc
// @Summary Get a voucher
// @Tags vouchers
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   voucher_id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /companies/{company_id}/vouchers/{voucher_id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	voucher, err := h.ledgerService.GetVoucher(c.Request.Context(), rc, c.Param("voucher_id"))
	if err != nil {
		respondError(c, err, "get voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
