package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// masterDataHandler serves the product and customer registers.
type masterDataHandler struct {
	masterDataService portssvc.MasterDataSvcFacade
}

func registerMasterDataRoutes(rg *gin.RouterGroup, masterDataService portssvc.MasterDataSvcFacade) {
	h := &masterDataHandler{masterDataService: masterDataService}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:product_id", h.getProduct)
	}
	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customer_id", h.getCustomer)
	}
}

// createProduct godoc
// @Summary Create a product
// @Description Registers a stocked product under a company-unique SKU.
// @Tags master-data
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param product body dto.CreateProductRequest true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "SKU already exists"
// @Security BearerAuth
// @Router /companies/{company_id}/products [post]
func (h *masterDataHandler) createProduct(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	product, err := h.masterDataService.CreateProduct(c.Request.Context(), rc, req)
	if err != nil {
		respondError(c, err, "create product")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Product created",
		slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	c.JSON(http.StatusCreated, product)
}

// listProducts godoc
// @Summary List products
// @Tags master-data
// @Produce json
// @Param company_id path string true "Company ID"
// @Param includeDeleted query bool false "Include soft-deleted products"
// @Success 200 {object} dto.ProductsResponse
// @Security BearerAuth
// @Router /companies/{company_id}/products [get]
func (h *masterDataHandler) listProducts(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	products, err := h.masterDataService.ListProducts(c.Request.Context(), rc, params.IncludeDeleted)
	if err != nil {
		respondError(c, err, "list products")
		return
	}
	c.JSON(http.StatusOK, dto.ProductsResponse{Products: products})
}

// getProduct godoc
// @Summary Get a product
// @Tags master-data
// @Produce json
// @Param company_id path string true "Company ID"
// @Param product_id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /companies/{company_id}/products/{product_id} [get]
func (h *masterDataHandler) getProduct(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	product, err := h.masterDataService.GetProduct(c.Request.Context(), rc, c.Param("product_id"))
	if err != nil {
		respondError(c, err, "get product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// createCustomer godoc
// @Summary Create a customer
// @Tags master-data
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param customer body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/customers [post]
func (h *masterDataHandler) createCustomer(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	customer, err := h.masterDataService.CreateCustomer(c.Request.Context(), rc, req)
	if err != nil {
		respondError(c, err, "create customer")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Customer created", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, customer)
}

// listCustomers godoc
// @Summary List customers
// @Tags master-data
// @Produce json
// @Param company_id path string true "Company ID"
// @Param includeDeleted query bool false "Include soft-deleted customers"
// @Success 200 {object} dto.CustomersResponse
// @Security BearerAuth
// @Router /companies/{company_id}/customers [get]
func (h *masterDataHandler) listCustomers(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	customers, err := h.masterDataService.ListCustomers(c.Request.Context(), rc, params.IncludeDeleted)
	if err != nil {
		respondError(c, err, "list customers")
		return
	}
	c.JSON(http.StatusOK, dto.CustomersResponse{Customers: customers})
}

// getCustomer godoc
// @Summary Get a customer
// @Tags master-data
// @Produce json
// @Param company_id path string true "Company ID"
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /companies/{company_id}/customers/{customer_id} [get]
func (h *masterDataHandler) getCustomer(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	customer, err := h.masterDataService.GetCustomer(c.Request.Context(), rc, c.Param("customer_id"))
	if err != nil {
		respondError(c, err, "get customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}
