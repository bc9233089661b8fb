package middleware

import (
	"net/http"
	"strings"

	"shortlet/config"
	"shortlet/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware gates reservation endpoints on an authenticated user.
// Unauthenticated requests receive the login route as a redirect target so
// the UI can send the user there instead of starting a reservation attempt.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONRedirectError(c, http.StatusUnauthorized, "Please log in to continue", config.AppConfig.LoginRoute)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, email, err := utils.ExtractUserFromToken(tokenString)
		if err != nil || userID == "" {
			utils.JSONRedirectError(c, http.StatusUnauthorized, "Please log in to continue", config.AppConfig.LoginRoute)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("email", email)
		c.Next()
	}
}
