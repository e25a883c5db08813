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

const upcomingEventUploadFolder = "femifunmi-foundation/upcoming-events"

type upcomingEventInput struct {
	Title             string `form:"title" binding:"required"`
	Description       string `form:"description" binding:"required"`
	DateISO           string `form:"dateIso" binding:"required"`
	Location          string `form:"location" binding:"required"`
	PriorityPlacement string `form:"priorityplacement"`
}

// ---------------- LIST ----------------
func ListUpcomingEvents(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		events, err := st.ListUpcomingEvents(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// ---------------- GET ----------------
func GetUpcomingEvent(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		event, err := st.GetUpcomingEvent(ctx, c.Param("id"))
		if err != nil {
			respondStoreError(c, cfg, err, "upcoming event not found")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// ---------------- CREATE ----------------
func CreateUpcomingEvent(cfg *config.Config, st *store.Store, up *utils.MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input upcomingEventInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !utils.IsInstantNowOrFuture(input.DateISO) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Upcoming event date cannot be in the past."})
			return
		}

		form, err := c.MultipartForm()
		if err != nil && err != http.ErrNotMultipart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}

		if form == nil || len(form.File["image"]) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Event image file is required."})
			return
		}

		uploaded, err := uploadSingleFile(c.Request.Context(), form.File["image"][0], upcomingEventUploadFolder, "image", up)
		if err != nil {
			respondMediaError(c, cfg, err)
			return
		}

		event := models.UpcomingEvent{
			ID:                utils.NewID("event"),
			Title:             input.Title,
			Description:       input.Description,
			DateISO:           input.DateISO,
			Location:          input.Location,
			ImageURL:          uploaded.SecureURL,
			PriorityPlacement: utils.ParseFormBool(input.PriorityPlacement),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.InsertUpcomingEvent(ctx, event); err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

// ---------------- UPDATE ----------------
func UpdateUpcomingEvent(cfg *config.Config, st *store.Store, up *utils.MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input upcomingEventInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !utils.IsInstantNowOrFuture(input.DateISO) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Upcoming event date cannot be in the past."})
			return
		}

		lookupCtx, cancelLookup := context.WithTimeout(context.Background(), 5*time.Second)
		existing, err := st.GetUpcomingEvent(lookupCtx, id)
		cancelLookup()
		if err != nil {
			respondStoreError(c, cfg, err, "upcoming event not found")
			return
		}

		form, err := c.MultipartForm()
		if err != nil && err != http.ErrNotMultipart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}

		imageURL := existing.ImageURL
		if form != nil && len(form.File["image"]) > 0 {
			uploaded, err := uploadSingleFile(c.Request.Context(), form.File["image"][0], upcomingEventUploadFolder, "image", up)
			if err != nil {
				respondMediaError(c, cfg, err)
				return
			}
			imageURL = uploaded.SecureURL
		}

		updated := models.UpcomingEvent{
			ID:                id,
			Title:             input.Title,
			Description:       input.Description,
			DateISO:           input.DateISO,
			Location:          input.Location,
			ImageURL:          imageURL,
			PriorityPlacement: utils.ParseFormBool(input.PriorityPlacement),
		}

		// The upload phase above can outlive any store deadline taken
		// before it, so the write gets a fresh context.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.ReplaceUpcomingEvent(ctx, id, updated); err != nil {
			respondStoreError(c, cfg, err, "upcoming event not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------------- DELETE ----------------
func DeleteUpcomingEvent(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.DeleteUpcomingEvent(ctx, c.Param("id")); err != nil {
			respondStoreError(c, cfg, err, "upcoming event not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
