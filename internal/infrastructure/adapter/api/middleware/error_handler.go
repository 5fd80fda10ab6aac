package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns a 500 response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"panic":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
