package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type lifecycleHandler struct {
	lifecycleService portssvc.LifecycleService
}

// registerLifecycleRoutes registers soft delete and restore for every soft-deletable kind.
// The kind segment is the entity kind in any case, with dashes or underscores, e.g. fiscal-year.
func registerLifecycleRoutes(rg *gin.RouterGroup, lifecycleService portssvc.LifecycleService) {
	h := &lifecycleHandler{lifecycleService: lifecycleService}

	entities := rg.Group("/entities/:kind/:entity_id")
	{
		entities.DELETE("", h.softDelete)
		entities.POST("/restore", h.restore)
	}
}

func parseKindParam(c *gin.Context) (domain.EntityKind, error) {
	raw := strings.ToUpper(strings.ReplaceAll(c.Param("kind"), "-", "_"))
	kind, err := domain.ParseEntityKind(raw)
	if err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}
	return kind, nil
}

// softDelete godoc
// @Summary Soft-delete an entity
// @Description Hides an account, voucher, fiscal year or inventory batch. Admins only.
// @Tags lifecycle
// @Param company_id path string true "Company ID"
// @Param kind path string true "account, voucher, fiscal-year or inventory-batch"
// @Param entity_id path string true "Entity ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Kind cannot be deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entity not found"
// @Failure 409 {object} map[string]string "Already deleted or still referenced"
// @Security BearerAuth
// @Router /companies/{company_id}/entities/{kind}/{entity_id} [delete]
func (h *lifecycleHandler) softDelete(c *gin.Context) {
	h.apply(c, "delete", h.lifecycleService.SoftDelete)
}

// restore godoc
// @Summary Restore a soft-deleted entity
// @Tags lifecycle
// @Param company_id path string true "Company ID"
// @Param kind path string true "account, voucher, fiscal-year or inventory-batch"
// @Param entity_id path string true "Entity ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Not deleted or restore would break an invariant"
// @Security BearerAuth
// @Router /companies/{company_id}/entities/{kind}/{entity_id}/restore [post]
func (h *lifecycleHandler) restore(c *gin.Context) {
	h.apply(c, "restore", h.lifecycleService.Restore)
}

func (h *lifecycleHandler) apply(c *gin.Context, verb string, fn func(ctx context.Context, rc domain.RequestContext, kind domain.EntityKind, entityID string) error) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	kind, err := parseKindParam(c)
	if err != nil {
		respondError(c, err, verb+" entity")
		return
	}

	entityID := c.Param("entity_id")
	if err := fn(c.Request.Context(), rc, kind, entityID); err != nil {
		respondError(c, err, verb+" "+kind.Label())
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Entity lifecycle changed",
		slog.String("action", verb), slog.String("entity_kind", string(kind)), slog.String("entity_id", entityID))
	c.Status(http.StatusNoContent)
}
