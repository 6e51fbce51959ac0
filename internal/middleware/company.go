package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// CompanyParam is the route parameter naming the company being acted on.
const CompanyParam = "company_id"

// CompanyContext resolves the caller's membership in the company named by the route and
// stores the resulting domain.RequestContext on the request. Must run after AuthMiddleware.
func CompanyContext(authorizer portssvc.CompanyAuthorizerSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		companyID := c.Param(CompanyParam)
		rc, err := authorizer.ResolveRequestContext(c.Request.Context(), userID, companyID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				// Membership and existence are indistinguishable to outsiders.
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Company not found"})
			case errors.Is(err, apperrors.ErrUnavailable):
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
			default:
				logger.Error("Failed to resolve company membership", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve company membership"})
			}
			return
		}

		enriched := logger.With(slog.String("company_id", rc.CompanyID), slog.String("role", string(rc.Role)))
		ctx := WithRequestContext(WithLogger(c.Request.Context(), enriched), rc)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
