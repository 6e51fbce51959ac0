package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type approvalHandler struct {
	approvalService portssvc.ApprovalService
}

func registerApprovalRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalService) {
	h := &approvalHandler{approvalService: approvalService}

	approvals := rg.Group("/approvals")
	{
		approvals.POST("", h.requestApproval)
		approvals.GET("", h.listApprovals)
		approvals.POST("/:approval_id/approve", h.approve)
		approvals.POST("/:approval_id/reject", h.reject)
	}
}

// requestApproval godoc
// @Summary Request an approval level
// @Description Levels are decided in order; a level may only be requested once.
// @Tags approvals
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param approval body dto.RequestApprovalRequest true "Approval request"
// @Success 201 {object} domain.Approval
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Level already requested or entity rejected"
// @Security BearerAuth
// @Router /companies/{company_id}/approvals [post]
func (h *approvalHandler) requestApproval(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.RequestApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	kind, err := domain.ParseEntityKind(string(req.EntityKind))
	if err != nil {
		respondError(c, apperrors.NewValidationError(err.Error()), "request approval")
		return
	}

	approval, err := h.approvalService.Request(c.Request.Context(), rc, kind, req.EntityID, req.Level, req.Notes)
	if err != nil {
		respondError(c, err, "request approval")
		return
	}
	c.JSON(http.StatusCreated, approval)
}

// listApprovals godoc
// @Summary List approvals
// @Tags approvals
// @Produce json
// @Param company_id path string true "Company ID"
// @Param entityKind query string false "Entity kind"
// @Param entityID query string false "Entity ID"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {object} dto.ApprovalsResponse
// @Security BearerAuth
// @Router /companies/{company_id}/approvals [get]
func (h *approvalHandler) listApprovals(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var params dto.ListApprovalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	filter := repositories.ApprovalFilter{EntityID: params.EntityID, Status: domain.ApprovalStatus(params.Status)}
	if params.EntityKind != "" {
		kind, err := domain.ParseEntityKind(params.EntityKind)
		if err != nil {
			respondError(c, apperrors.NewValidationError(err.Error()), "list approvals")
			return
		}
		filter.EntityKind = kind
	}

	approvals, err := h.approvalService.List(c.Request.Context(), rc, filter)
	if err != nil {
		respondError(c, err, "list approvals")
		return
	}
	c.JSON(http.StatusOK, dto.ApprovalsResponse{Approvals: approvals})
}

// approve godoc
// @Summary Approve a pending level
// @Tags approvals
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param approval_id path string true "Approval ID"
// @Param decision body dto.DecideApprovalRequest false "Notes"
// @Success 200 {object} domain.Approval
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Not pending or earlier level undecided"
// @Security BearerAuth
// @Router /companies/{company_id}/approvals/{approval_id}/approve [post]
func (h *approvalHandler) approve(c *gin.Context) {
	h.decide(c, "approve", h.approvalService.Approve)
}

// reject godoc
// @Summary Reject a pending level
// @Tags approvals
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param approval_id path string true "Approval ID"
// @Param decision body dto.DecideApprovalRequest false "Notes"
// @Success 200 {object} domain.Approval
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Not pending"
// @Security BearerAuth
// @Router /companies/{company_id}/approvals/{approval_id}/reject [post]
func (h *approvalHandler) reject(c *gin.Context) {
	h.decide(c, "reject", h.approvalService.Reject)
}

type decideFunc func(ctx context.Context, rc domain.RequestContext, approvalID, notes string) (*domain.Approval, error)

func (h *approvalHandler) decide(c *gin.Context, verb string, fn decideFunc) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	var req dto.DecideApprovalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err, "request format")
			return
		}
	}

	approval, err := fn(c.Request.Context(), rc, c.Param("approval_id"), req.Notes)
	if err != nil {
		respondError(c, err, verb+" approval")
		return
	}
	c.JSON(http.StatusOK, approval)
}
