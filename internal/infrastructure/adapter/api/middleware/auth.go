package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// SubjectKey is the gin context key of the authenticated subject
const SubjectKey = "auth_subject"

// RequireRole admits requests bearing a valid access token with the given role
func RequireRole(tokens *auth.TokenManager, role string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
			unauthorized(c, "Missing bearer token")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(header[len("Bearer "):]))
		if err != nil {
			logger.Info("Rejected access token", map[string]any{
				"path":  c.FullPath(),
				"error": err,
			})
			unauthorized(c, "Invalid access token")
			return
		}

		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeAuthentication,
				Message: "Insufficient role",
			})
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.CodeAuthentication,
		Message: message,
	})
}
