package middleware

import (
	"net/http"
	"strings"

	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// ServiceAuthMiddleware authenticates the conversational host. The webhook has
// no end users; callers present a signed service token.
type ServiceAuthMiddleware struct {
	tokens   *jwt.Service
	disabled bool
}

func NewServiceAuthMiddleware(tokens *jwt.Service, cfg config.Config) *ServiceAuthMiddleware {
	return &ServiceAuthMiddleware{
		tokens:   tokens,
		disabled: cfg.Auth.Disabled,
	}
}

func (m *ServiceAuthMiddleware) RequireServiceToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.disabled {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}

		c.Set("service", claims.Service)
		c.Next()
	}
}
