package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles stock receipts, consumption and adjustments.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	inventory := rg.Group("/inventory")
	{
		inventory.POST("/batches", h.receiveBatch)
		inventory.GET("/batches", h.listBatches)
		inventory.POST("/consume", h.consume)
		inventory.POST("/adjust", h.adjust)
		inventory.GET("/transactions", h.listTransactions)
		inventory.GET("/products/:product_id/on-hand", h.reconcileProduct)
	}
}

// receiveBatch godoc
// @Summary Receive a batch
// @Description Records a PURCHASE into a new batch.
// @Tags inventory
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param batch body dto.ReceiveBatchRequest true "Batch"
// @Success 201 {object} domain.InventoryBatch
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/inventory/batches [post]
func (h *inventoryHandler) receiveBatch(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.ReceiveBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	batch, err := h.inventoryService.ReceiveBatch(c.Request.Context(), rc, req)
	if err != nil {
		respondError(c, err, "receive batch")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Batch received",
		slog.String("batch_id", batch.BatchID), slog.String("product_id", batch.ProductID), slog.String("quantity", batch.Quantity.String()))
	c.JSON(http.StatusCreated, batch)
}

// listBatches godoc
// @Summary List batches
// @Tags inventory
// @Produce json
// @Param company_id path string true "Company ID"
// @Param productID query string false "Product"
// @Param includeDeleted query bool false "Include soft-deleted batches"
// @Success 200 {object} dto.BatchesResponse
// @Security BearerAuth
// @Router /companies/{company_id}/inventory/batches [get]
func (h *inventoryHandler) listBatches(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ListBatchesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	batches, err := h.inventoryService.ListBatches(c.Request.Context(), rc, params.ProductID, params.IncludeDeleted)
	if err != nil {
		respondError(c, err, "list batches")
		return
	}
	c.JSON(http.StatusOK, dto.BatchesResponse{Batches: batches})
}

// consume godoc
// @Summary Consume stock
// @Description Records a SALE from a named batch, or first-in first-out across live batches.
// @Tags inventory
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param consumption body dto.ConsumeRequest true "Consumption"
// @Success 200 {object} domain.ConsumptionResult
// @Failure 400 {object} map[string]string "Insufficient stock or invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/inventory/consume [post]
func (h *inventoryHandler) consume(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.ConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	result, err := h.inventoryService.Consume(c.Request.Context(), rc, req)
	if err != nil {
		respondError(c, err, "consume stock")
		return
	}
	c.JSON(http.StatusOK, result)
}

// adjust godoc
// @Summary Adjust a batch
// @Description Records a signed ADJUSTMENT. Remaining quantity may not go below zero.
// @Tags inventory
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param adjustment body dto.AdjustRequest true "Adjustment"
// @Success 200 {object} domain.InventoryBatch
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/inventory/adjust [post]
func (h *inventoryHandler) adjust(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	batch, err := h.inventoryService.Adjust(c.Request.Context(), rc, req)
	if err != nil {
		respondError(c, err, "adjust batch")
		return
	}
	c.JSON(http.StatusOK, batch)
}

// listTransactions godoc
// @Summary List stock movements
// @Tags inventory
// @Produce json
// @Param company_id path string true "Company ID"
// @Param productID query string false "Product"
// @Success 200 {object} dto.InventoryTransactionsResponse
// @Security BearerAuth
// @Router /companies/{company_id}/inventory/transactions [get]
func (h *inventoryHandler) listTransactions(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	txns, err := h.inventoryService.ListTransactions(c.Request.Context(), rc, c.Query("productID"))
	if err != nil {
		respondError(c, err, "list inventory transactions")
		return
	}
	c.JSON(http.StatusOK, dto.InventoryTransactionsResponse{Transactions: txns})
}

// reconcileProduct godoc
// @Summary On-hand quantity of a product
// @Tags inventory
// @Produce json
// @Param company_id path string true "Company ID"
// @Param product_id path string true "Product"
// @Success 200 {object} dto.ReconcileResponse
// @Security BearerAuth
// @Router /companies/{company_id}/inventory/products/{product_id}/on-hand [get]
func (h *inventoryHandler) reconcileProduct(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	productID := c.Param("product_id")
	onHand, err := h.inventoryService.ReconcileProduct(c.Request.Context(), rc, productID)
	if err != nil {
		respondError(c, err, "reconcile product")
		return
	}
	c.JSON(http.StatusOK, dto.ReconcileResponse{ProductID: productID, OnHand: onHand})
}
