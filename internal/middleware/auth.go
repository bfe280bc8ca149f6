package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/response"
)

// JWTAuth validates the Bearer token and puts the resolved user_id into
// the gin context. Everything under the booking API sits behind it.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
