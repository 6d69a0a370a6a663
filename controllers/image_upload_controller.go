package controllers

import (
	"net/http"

	"github.com/Panupong-xD/SodiumTracker/utils"

	"github.com/gin-gonic/gin"
)

type ImageUploadController struct {
	Uploader *utils.ImageUploader // nil when S3 is not configured
}

func NewImageUploadController(uploader *utils.ImageUploader) *ImageUploadController {
	return &ImageUploadController{Uploader: uploader}
}

// POST /images  { "image_base64": "data:image/jpeg;base64,..." }
// Returns the URI to store as a food item's imageRef.
func (h *ImageUploadController) UploadImage(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	url, err := h.Uploader.UploadBase64Image(c.Request.Context(), req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
