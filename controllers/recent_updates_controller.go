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

const recentUpdateUploadFolder = "femifunmi-foundation/recent-updates"

type recentUpdateInput struct {
	Title                string `form:"title" binding:"required"`
	Description          string `form:"description" binding:"required"`
	Date                 string `form:"date" binding:"required"`
	Location             string `form:"location" binding:"required"`
	MainMediaIndex       *int   `form:"mainMediaIndex"`
	MediaDescriptorsJSON string `form:"mediaDescriptorsJson" binding:"required"`
}

// buildRecentUpdateMedia reconciles the request's descriptor list and
// files into the final media list plus the main media id.
func buildRecentUpdateMedia(c *gin.Context, cfg *config.Config, up *utils.MediaUploader, input recentUpdateInput) ([]models.MediaAsset, string, error) {
	form, err := c.MultipartForm()
	if err != nil && err != http.ErrNotMultipart {
		return nil, "", newRequestError("invalid form data")
	}

	var files []uploadedFile
	if form != nil {
		files, err = readFormFiles(form.File["mediaFiles"])
		if err != nil {
			return nil, "", err
		}
	}

	media, err := buildMediaFromDescriptors(
		c.Request.Context(), input.MediaDescriptorsJSON, files,
		recentUpdateUploadFolder, up, cfg.UploadConcurrency, "update-media",
	)
	if err != nil {
		return nil, "", err
	}
	if len(media) == 0 {
		return nil, "", newRequestError("At least one media item is required.")
	}
	return media, mainMediaIDFor(media, input.MainMediaIndex), nil
}

// mainMediaIDFor picks the main media id for a non-empty reconciled
// list. The requested index is clamped into [0, len-1], so the returned
// id always references an element of media.
func mainMediaIDFor(media []models.MediaAsset, requested *int) string {
	index := 0
	if requested != nil {
		index = *requested
	}
	if index < 0 {
		index = 0
	}
	if index > len(media)-1 {
		index = len(media) - 1
	}
	return media[index].ID
}

// ---------------- LIST ----------------
func ListRecentUpdates(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		updates, err := st.ListRecentUpdates(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, updates)
	}
}

// ---------------- GET ----------------
func GetRecentUpdate(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		update, err := st.GetRecentUpdate(ctx, c.Param("id"))
		if err != nil {
			respondStoreError(c, cfg, err, "recent update not found")
			return
		}
		c.JSON(http.StatusOK, update)
	}
}

// ---------------- CREATE ----------------
func CreateRecentUpdate(cfg *config.Config, st *store.Store, up *utils.MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input recentUpdateInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !utils.IsDateTodayOrFuture(input.Date) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recent update date cannot be in the past."})
			return
		}

		media, mainMediaID, err := buildRecentUpdateMedia(c, cfg, up, input)
		if err != nil {
			respondMediaError(c, cfg, err)
			return
		}

		update := models.RecentUpdate{
			ID:          utils.NewID("update"),
			Title:       input.Title,
			Description: input.Description,
			Date:        input.Date,
			Location:    input.Location,
			MainMediaID: mainMediaID,
			Media:       media,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.InsertRecentUpdate(ctx, update); err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, update)
	}
}

// ---------------- UPDATE ----------------
func UpdateRecentUpdate(cfg *config.Config, st *store.Store, up *utils.MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input recentUpdateInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !utils.IsDateTodayOrFuture(input.Date) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recent update date cannot be in the past."})
			return
		}

		lookupCtx, cancelLookup := context.WithTimeout(context.Background(), 5*time.Second)
		_, err := st.GetRecentUpdate(lookupCtx, id)
		cancelLookup()
		if err != nil {
			respondStoreError(c, cfg, err, "recent update not found")
			return
		}

		media, mainMediaID, err := buildRecentUpdateMedia(c, cfg, up, input)
		if err != nil {
			respondMediaError(c, cfg, err)
			return
		}

		updated := models.RecentUpdate{
			ID:          id,
			Title:       input.Title,
			Description: input.Description,
			Date:        input.Date,
			Location:    input.Location,
			MainMediaID: mainMediaID,
			Media:       media,
		}

		// The upload phase above can outlive any store deadline taken
		// before it, so the write gets a fresh context.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.ReplaceRecentUpdate(ctx, id, updated); err != nil {
			respondStoreError(c, cfg, err, "recent update not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------------- DELETE ----------------
func DeleteRecentUpdate(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.DeleteRecentUpdate(ctx, c.Param("id")); err != nil {
			respondStoreError(c, cfg, err, "recent update not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
