package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gymfit/pkg/utils"
)

func JWTAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		accountID, err := claims.AccountID()
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
			c.Abort()
			return
		}

		id := Identity{AccountID: accountID, Role: claims.Role}
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
		c.Set("user_id", accountID.String())
		c.Set("Role", claims.Role)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok || id.Role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
