package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"orvela_back_end/internal/config"

	"github.com/gin-gonic/gin"
)

//
// 📤 POST /upload — champ multipart "product"
//
func Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("product")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": 0, "error": "no file received"})
		return
	}

	uploadDir := config.UploadDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": 0, "error": "could not save file"})
		return
	}

	// Nom unique, même convention que l'ancien serveur : product_<ts>.<ext>
	filename := fmt.Sprintf("product_%d%s", time.Now().UnixMilli(), filepath.Ext(fileHeader.Filename))

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": 0, "error": "could not save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   1,
		"image_url": fmt.Sprintf("%s/images/%s", config.PublicBaseURL(), filename),
	})
}

//
// 🖼️ GET /images/:filename — sert les images uploadées
//
func ServeImage(c *gin.Context) {
	// filepath.Base neutralise toute tentative de remontée de chemin
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(config.UploadDir(), filename)

	if _, err := os.Stat(path); err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", imageContentType(filename))
	c.File(path)
}

// imageContentType déduit le type MIME de l'extension du fichier.
func imageContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
