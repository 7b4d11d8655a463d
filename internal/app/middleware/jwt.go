package middleware

import (
	"strings"

	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/error/code"
	"github.com/KCP2005/date-collection/internal/error/response"
	"github.com/KCP2005/date-collection/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PrincipalKey is the gin context key holding the authenticated principal
const PrincipalKey = "principal"

var jwtService services.InterfaceJWTService

// InitAuthMiddleware wires the middleware to the shared JWT service
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB, redis services.InterfaceRedisService) {
	jwtService = services.NewJWTService(cfg, db, redis)
}

// extractToken removes the Bearer prefix from an Authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authenticate rejects requests without a valid token and stores the
// caller's identity in the context
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortWithCode(c, code.ErrTokenInvalid)
			return
		}

		tokenString := extractToken(authHeader)
		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			response.AbortWithCode(c, code.ErrTokenInvalid)
			return
		}

		c.Set(PrincipalKey, services.Principal{
			UserID: claims.UserID,
			Role:   claims.Role,
			TeamID: claims.TeamID,
		})
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequireAdmin allows only admin principals through. It assumes
// Authenticate already ran on the route.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			response.AbortWithCode(c, code.ErrTokenInvalid)
			return
		}
		if !principal.IsAdmin() {
			response.AbortWithCode(c, code.ErrRoleForbidden)
			return
		}
		c.Next()
	}
}

// GetPrincipal reads the authenticated principal from the context
func GetPrincipal(c *gin.Context) (services.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return services.Principal{}, false
	}
	principal, ok := value.(services.Principal)
	return principal, ok
}
