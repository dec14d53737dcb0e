// File: handlers/storage.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"afinare/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles catalog image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// allowedFolders defines permitted destination folders for uploads.
var allowedFolders = map[string]bool{
	"servicos": true,
	"combos":   true,
	"cursos":   true,
}

// UploadImageHandler handles POST /api/admin/upload/:folder and
// POST /api/admin/upload/:folder/:id. With an entity id the file lands in a
// per-entity subfolder, e.g. servicos/limpeza-de-pele.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'servicos', 'combos' and 'cursos'"})
		return
	}
	if id := c.Param("id"); id != "" {
		folder = folder + "/" + id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	img, err := h.StorageSvc.UploadImage(c.Request.Context(), tempFilePath, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "file uploaded successfully",
		"url":      img.URL,
		"publicId": img.PublicID,
	})
}

// DeleteImageHandler handles DELETE /api/admin/upload/*publicId. The wildcard
// is needed because Cloudinary public IDs embed the folder path.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public ID not provided"})
		return
	}

	if err := h.StorageSvc.DeleteImage(c.Request.Context(), publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted successfully"})
}
