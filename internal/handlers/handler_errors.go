package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP status table shared by every handler.
// action completes "Failed to ..." for unexpected errors.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var domainErr *apperrors.DomainError
	switch {
	case errors.As(err, &domainErr):
		status := http.StatusBadRequest
		if domainErr.Code == apperrors.CodeInvalidPaymentDetails {
			status = http.StatusUnprocessableEntity
		}
		logger.Warn("Request rejected by business rules",
			slog.String("code", string(domainErr.Code)),
			slog.String("error", domainErr.Error()))
		c.JSON(status, domainErr)
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Access forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Info("Conflicting update", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "The resource was modified by another request. Reload and try again"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// requireUser reads the authenticated user id, answering 401 when it is missing.
func requireUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
