package handlers

import (
	"errors"
	"net/http"

	"tripmarket/internal/domain"
	"tripmarket/internal/http/middleware"
	"tripmarket/internal/repositories"
	"tripmarket/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse standardizes error payloads for new handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		var ve domain.ValidationError
		errors.As(err, &ve)
		var details any
		if ve.Field != "" {
			details = gin.H{"field": ve.Field}
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), details)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.Is(err, repositories.ErrRedisUnavailable):
		respondError(c, http.StatusServiceUnavailable, "unavailable", err.Error(), nil)
	default:
		utils.Log().Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
