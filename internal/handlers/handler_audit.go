package handlers

import (
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditService
}

func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditService) {
	h := &auditHandler{auditService: auditService}
	rg.GET("/audit-logs", h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit log entries
// @Description Newest first. Pass the returned nextToken to fetch the following page.
// @Tags audit
// @Produce json
// @Param company_id path string true "Company ID"
// @Param entityKind query string false "Entity kind"
// @Param entityID query string false "Entity ID"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} map[string]string "Invalid token or parameters"
// @Security BearerAuth
// @Router /companies/{company_id}/audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	filter := repositories.AuditFilter{EntityID: params.EntityID, Limit: params.Limit}
	if params.EntityKind != "" {
		kind, err := domain.ParseEntityKind(params.EntityKind)
		if err != nil {
			respondError(c, apperrors.NewValidationError(err.Error()), "list audit logs")
			return
		}
		filter.EntityKind = kind
	}

	logs, next, err := h.auditService.List(c.Request.Context(), rc, filter, params.NextToken)
	if err != nil {
		respondError(c, err, "list audit logs")
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{AuditLogs: logs, NextToken: next})
}
