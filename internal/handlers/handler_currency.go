package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies and exchange rates.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers currency and exchange rate routes on a company-scoped group.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currency_code", h.getCurrencyByCode)
		currencies.PATCH("/:currency_code", h.updateCurrency)
		currencies.GET("/:currency_code/rates", h.listExchangeRates)
		currencies.GET("/:currency_code/rate", h.resolveRate)
	}

	rg.POST("/exchange-rates", h.createExchangeRate)
}

// createCurrency godoc
// @Summary Enable a currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Currency already exists"
// @Security BearerAuth
// @Router /companies/{company_id}/currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), rc, req)
	if err != nil {
		respondError(c, err, "create currency")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Currency created", slog.String("currency_code", currency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Tags currencies
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /companies/{company_id}/currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), rc)
	if err != nil {
		respondError(c, err, "list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency
// @Tags currencies
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   currency_code path string true "ISO 4217 code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /companies/{company_id}/currencies/{currency_code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), rc, c.Param("currency_code"))
	if err != nil {
		respondError(c, err, "get currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Refused once any voucher references the currency.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   currency_code path string true "ISO 4217 code"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 409 {object} map[string]string "Currency in use"
// @Security BearerAuth
// @Router /companies/{company_id}/currencies/{currency_code} [patch]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), rc, c.Param("currency_code"), req)
	if err != nil {
		respondError(c, err, "update currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// createExchangeRate godoc
// @Summary Add an exchange rate
// @Description Appends a rate to the currency's series. Rates are never edited in place.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   rate body dto.CreateExchangeRateRequest true "Rate"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /companies/{company_id}/exchange-rates [post]
func (h *currencyHandler) createExchangeRate(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	rate, err := h.currencyService.AddExchangeRate(c.Request.Context(), rc, req)
	if err != nil {
		respondError(c, err, "add exchange rate")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Exchange rate added",
		slog.String("currency_code", rate.CurrencyCode), slog.String("rate", rate.Rate.String()))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List a currency's exchange rates
// @Tags currencies
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   currency_code path string true "ISO 4217 code"
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /companies/{company_id}/currencies/{currency_code}/rates [get]
func (h *currencyHandler) listExchangeRates(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	rates, err := h.currencyService.ListExchangeRates(c.Request.Context(), rc, c.Param("currency_code"))
	if err != nil {
		respondError(c, err, "list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// resolveRate godoc
// @Summary Resolve the rate effective on a date
// @Tags currencies
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   currency_code path string true "ISO 4217 code"
// @Param   date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.ResolveRateResponse
// @Failure 400 {object} map[string]string "No rate available"
// @Security BearerAuth
// @Router /companies/{company_id}/currencies/{currency_code}/rate [get]
func (h *currencyHandler) resolveRate(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	date, err := dto.ParseDate("date", c.Query("date"))
	if err != nil {
		respondError(c, err, "resolve rate")
		return
	}
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	code := c.Param("currency_code")
	rate, err := h.currencyService.ResolveRate(c.Request.Context(), rc, code, date)
	if err != nil {
		respondError(c, err, "resolve rate")
		return
	}
	c.JSON(http.StatusOK, dto.ResolveRateResponse{CurrencyCode: code, Date: dto.FormatDate(date), Rate: rate})
}
