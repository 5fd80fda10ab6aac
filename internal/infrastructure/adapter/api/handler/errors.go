package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HTTPStatus maps a domain error to the HTTP status of its response
func HTTPStatus(err error) int {
	if pe, ok := domainerr.AsProviderError(err); ok {
		switch pe.Kind {
		case domainerr.ProviderUnavailable:
			return http.StatusServiceUnavailable
		case domainerr.ProviderTimeout:
			return http.StatusGatewayTimeout
		default:
			return http.StatusBadGateway
		}
	}

	switch {
	case errors.Is(err, domainerr.ErrValidation), errors.Is(err, domainerr.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateReference):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for a domain error. Server-side
// failures get a generic message; their details only go to the log.
func NewErrorResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}

	if pe, ok := domainerr.AsProviderError(err); ok {
		resp.Message = "Failed to initiate QRIS payment"
		resp.Detail = dto.ProviderErrorDetail{
			Kind:   string(pe.Kind),
			Status: pe.StatusCode,
			Body:   pe.Body,
		}
		return resp
	}

	switch {
	case errors.Is(err, domainerr.ErrNotFound):
		resp.Message = "Transaction not found"
	case errors.Is(err, domainerr.ErrAuthentication):
		resp.Message = "Unauthorized"
	case HTTPStatus(err) == http.StatusInternalServerError:
		resp.Message = "Internal server error"
	}
	return resp
}

// respondError logs err and writes its response
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := HTTPStatus(err)

	fields := map[string]any{
		"path":   c.FullPath(),
		"status": status,
	}
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}
	fields["error"] = err

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Info(message, fields)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, NewErrorResponse(err))
}

// respondBadRequest answers a malformed request
func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: message,
	})
}
