package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/femifunmi/foundation-backend-go/config"
	utils "github.com/femifunmi/foundation-backend-go/utils"
)

// ---------------- UPLOAD ----------------
// Raw passthrough to the upload gateway for the admin UI.
func CreateUpload(cfg *config.Config, up *utils.MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Folder       string `form:"folder"`
			ResourceType string `form:"resourceType"`
		}
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		switch input.ResourceType {
		case "", "auto", "image", "video":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "resourceType must be auto, image or video"})
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
			return
		}

		result, err := uploadSingleFile(c.Request.Context(), header, input.Folder, input.ResourceType, up)
		if err != nil {
			respondMediaError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// ---------------- HEALTH ----------------
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
