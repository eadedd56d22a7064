package middleware

import (
	"net/http"
	"strings"

	"pos_api/internal/models"
	"pos_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// permissions maps each capability to the roles allowed to exercise it.
// The table is the single source of truth for role gating; handlers never
// re-check roles themselves.
var permissions = map[string][]string{
	"users:create":           {string(models.RoleAdmin)},
	"users:read":             {string(models.RoleAdmin)},
	"users:write":            {string(models.RoleAdmin)},
	"products:write":         {string(models.RoleAdmin)},
	"products:read-internal": {string(models.RoleAdmin), string(models.RoleStaff)},
	"customers:manage":       {string(models.RoleAdmin), string(models.RoleStaff)},
	"orders:create":          {string(models.RoleAdmin), string(models.RoleStaff)},
	"orders:read":            {string(models.RoleAdmin)},
	"orders:read-own":        {string(models.RoleAdmin), string(models.RoleStaff)},
	"orders:summary":         {string(models.RoleAdmin), string(models.RoleStaff)},
	"orders:receipt":         {string(models.RoleAdmin), string(models.RoleStaff)},
	"vouchers:read":          {string(models.RoleAdmin), string(models.RoleStaff)},
	"vouchers:write":         {string(models.RoleAdmin)},
}

// Authorize validates the bearer token and evaluates the capability against
// the permission table once per request. Missing or bad tokens are 401,
// a valid token with the wrong role is 403.
func Authorize(jwtSecret, capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Authorization header required",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Bearer token required",
			})
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Invalid or expired token",
			})
			return
		}

		if !allowed(capability, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "fail",
				"message": "Access denied",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func allowed(capability, role string) bool {
	for _, r := range permissions[capability] {
		if r == role {
			return true
		}
	}
	return false
}
