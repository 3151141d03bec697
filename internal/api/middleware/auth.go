package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/user"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/response"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Auth holds role-gate middlewares. Role checks here are coarse transport
// gates; relationship checks (mentor identity, department match, dean flag)
// live in the workflow service.
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

func claimsFrom(c *gin.Context) (*types.Claims, bool) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return nil, false
	}
	return claims, true
}

// Admin allows only ADMIN principals.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if claims.Role != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// Roles allows any of the listed roles.
func (a *Auth) Roles(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "permission denied"})
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows local frontend dev servers.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
