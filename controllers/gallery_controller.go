package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/femifunmi/foundation-backend-go/config"
	models "github.com/femifunmi/foundation-backend-go/models"
	store "github.com/femifunmi/foundation-backend-go/store"
	utils "github.com/femifunmi/foundation-backend-go/utils"
)

const galleryUploadFolder = "femifunmi-foundation/gallery"

type galleryInput struct {
	Type              string `form:"type" binding:"required"`
	DonateeName       string `form:"donateeName"`
	Title             string `form:"title" binding:"required"`
	Description       string `form:"description"`
	Location          string `form:"location" binding:"required"`
	Address           string `form:"address" binding:"required"`
	Date              string `form:"date" binding:"required"`
	MediaURL          string `form:"mediaUrl"`
	PriorityPlacement string `form:"priorityplacement"`
	ExtraMediaJSON    string `form:"extraMediaJson"`
}

// ---------------- LIST ----------------
func ListGalleryItems(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		items, err := st.ListGalleryItems(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ---------------- GET ----------------
func GetGalleryItem(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		item, err := st.GetGalleryItem(ctx, c.Param("id"))
		if err != nil {
			respondStoreError(c, cfg, err, "gallery item not found")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// ---------------- CREATE ----------------
func CreateGalleryItem(cfg *config.Config, st *store.Store, up *utils.MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input galleryInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.IsValidMediaType(input.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be photo or video"})
			return
		}
		if !utils.IsDateTodayOrFuture(input.Date) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gallery date cannot be in the past."})
			return
		}

		form, err := c.MultipartForm()
		if err != nil && err != http.ErrNotMultipart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}

		mediaURL := input.MediaURL
		extraMedia := []models.MediaAsset{}

		if form != nil {
			if covers := form.File["media"]; len(covers) > 0 {
				uploaded, err := uploadSingleFile(c.Request.Context(), covers[0], galleryUploadFolder, resourceTypeFor(input.Type, ""), up)
				if err != nil {
					respondMediaError(c, cfg, err)
					return
				}
				mediaURL = uploaded.SecureURL
			}

			if input.ExtraMediaJSON != "" {
				files, err := readFormFiles(form.File["extraMediaFiles"])
				if err != nil {
					respondMediaError(c, cfg, err)
					return
				}
				extraMedia, err = buildMediaFromDescriptors(
					c.Request.Context(), input.ExtraMediaJSON, files,
					galleryUploadFolder, up, cfg.UploadConcurrency, "gallery-media",
				)
				if err != nil {
					respondMediaError(c, cfg, err)
					return
				}
			}
		}

		if mediaURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gallery media file is required."})
			return
		}

		item := models.GalleryItem{
			ID:                utils.NewID("gallery"),
			Type:              input.Type,
			DonateeName:       input.DonateeName,
			Title:             input.Title,
			Description:       input.Description,
			Location:          input.Location,
			Address:           input.Address,
			Date:              input.Date,
			MediaURL:          mediaURL,
			PriorityPlacement: utils.ParseFormBool(input.PriorityPlacement),
			ExtraMedia:        extraMedia,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.InsertGalleryItem(ctx, item); err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// ---------------- UPDATE ----------------
func UpdateGalleryItem(cfg *config.Config, st *store.Store, up *utils.MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input galleryInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.IsValidMediaType(input.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be photo or video"})
			return
		}
		if !utils.IsDateTodayOrFuture(input.Date) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gallery date cannot be in the past."})
			return
		}

		lookupCtx, cancelLookup := context.WithTimeout(context.Background(), 5*time.Second)
		existing, err := st.GetGalleryItem(lookupCtx, id)
		cancelLookup()
		if err != nil {
			respondStoreError(c, cfg, err, "gallery item not found")
			return
		}

		form, err := c.MultipartForm()
		if err != nil && err != http.ErrNotMultipart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}

		// Edits keep the existing cover unless a new file or URL arrives.
		mediaURL := input.MediaURL
		if mediaURL == "" {
			mediaURL = existing.MediaURL
		}
		extraMedia := existing.ExtraMedia
		if extraMedia == nil {
			extraMedia = []models.MediaAsset{}
		}

		// An absent extraMediaJson field keeps the stored extra media; an
		// explicitly empty one clears it.
		extraJSON, extraJSONSent := c.GetPostForm("extraMediaJson")

		if form != nil {
			if covers := form.File["media"]; len(covers) > 0 {
				uploaded, err := uploadSingleFile(c.Request.Context(), covers[0], galleryUploadFolder, resourceTypeFor(input.Type, ""), up)
				if err != nil {
					respondMediaError(c, cfg, err)
					return
				}
				mediaURL = uploaded.SecureURL
			}
		}

		if extraJSONSent {
			if extraJSON == "" {
				extraMedia = []models.MediaAsset{}
			} else {
				var files []uploadedFile
				if form != nil {
					files, err = readFormFiles(form.File["extraMediaFiles"])
					if err != nil {
						respondMediaError(c, cfg, err)
						return
					}
				}
				extraMedia, err = buildMediaFromDescriptors(
					c.Request.Context(), extraJSON, files,
					galleryUploadFolder, up, cfg.UploadConcurrency, "gallery-media",
				)
				if err != nil {
					respondMediaError(c, cfg, err)
					return
				}
			}
		}

		updated := models.GalleryItem{
			ID:                id,
			Type:              input.Type,
			DonateeName:       input.DonateeName,
			Title:             input.Title,
			Description:       input.Description,
			Location:          input.Location,
			Address:           input.Address,
			Date:              input.Date,
			MediaURL:          mediaURL,
			PriorityPlacement: utils.ParseFormBool(input.PriorityPlacement),
			ExtraMedia:        extraMedia,
		}

		// The upload phase above can outlive any store deadline taken
		// before it, so the write gets a fresh context.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.ReplaceGalleryItem(ctx, id, updated); err != nil {
			respondStoreError(c, cfg, err, "gallery item not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------------- DELETE ----------------
func DeleteGalleryItem(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.DeleteGalleryItem(ctx, c.Param("id")); err != nil {
			respondStoreError(c, cfg, err, "gallery item not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
