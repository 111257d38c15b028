package middleware

import (
	"net/http"

	"orvela_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// FetchUser protège les routes panier. Le token signé arrive dans le header
// historique "auth-token" (pas de schéma Bearer côté front).
func FetchUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("auth-token")
		if token == "" {
			c.String(http.StatusUnauthorized, "Access denied")
			c.Abort()
			return
		}

		userID, err := utils.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate properly"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
