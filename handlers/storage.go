package handlers

import (
	"net/http"

	"parcelo/services/storage"
	"parcelo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler uploads listing images to the configured storage backend.
// Registered only when a backend is configured; without one the wizard
// embeds images as data URIs instead.
type StorageHandler struct {
	StorageService storage.StorageService
}

func NewStorageHandler(storageService storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageService: storageService}
}

// UploadImageHandler handles POST /api/storage/upload with a multipart
// "file" part, returning the stored image URL.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected a multipart 'file' part"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.StorageService.UploadImage(c.Request.Context(), file, "listings")
	if err != nil {
		utils.GetLogger().Error("image upload failed", zap.String("file", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
