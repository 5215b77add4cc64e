package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ensaladazo/ecommerce-api/auth"
)

// ValidateToken guards protected routes. It verifies the Bearer token and
// puts the subject username into the context for the handler. Every
// failure answers 401 with a WWW-Authenticate challenge so clients know
// to re-authenticate.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header is missing")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		username, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set("username", username)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	c.Abort()
}
