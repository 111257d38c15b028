package handlers

import (
	"net/http"

	"orvela_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🔍 GET /searchproducts?q=...
//
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "query parameter 'q' is required"})
		return
	}

	results, err := services.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "search unavailable"})
		return
	}

	c.JSON(http.StatusOK, results)
}
