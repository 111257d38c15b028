package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET / — liveness pour le front et le monitoring
func Health(c *gin.Context) {
	c.String(http.StatusOK, "Orvela API is running")
}
