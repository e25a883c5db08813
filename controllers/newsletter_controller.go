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

// ---------------- SUBSCRIBE ----------------
func SubscribeNewsletter(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FirstName    string `json:"firstName" binding:"required"`
			Email        string `json:"email" binding:"required,email"`
			ConsentGiven bool   `json:"consentGiven"`
			Source       string `json:"source"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !input.ConsentGiven {
			c.JSON(http.StatusBadRequest, gin.H{"error": "consent is required to subscribe"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, alreadySubscribed, err := st.UpsertNewsletterSubscriber(ctx, input.FirstName, input.Email, input.Source)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}

		if alreadySubscribed {
			c.JSON(http.StatusOK, gin.H{"ok": true, "alreadySubscribed": true})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "alreadySubscribed": false})
	}
}

// ---------------- UNSUBSCRIBE ----------------
func UnsubscribeNewsletter(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.DeactivateNewsletterSubscriber(ctx, input.Email); err != nil {
			respondStoreError(c, cfg, err, "subscriber not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// ---------------- SUBSCRIBERS ----------------
func ListNewsletterSubscribers(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		subscribers, err := st.ListNewsletterSubscribers(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, subscribers)
	}
}

// ---------------- CAMPAIGNS ----------------
func ListNewsletterCampaigns(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		campaigns, err := st.ListNewsletterCampaigns(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, campaigns)
	}
}

// ---------------- SEND ----------------
// Delivers a campaign through the outbound webhook and appends the
// immutable campaign record.
func SendNewsletterCampaign(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Subject string `json:"subject" binding:"required"`
			Body    string `json:"body" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		recipients, err := st.ListActiveRecipients(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		if len(recipients) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No active newsletter subscribers found."})
			return
		}

		if err := utils.DeliverNewsletterBatch(cfg.NewsletterWebhookURL, input.Subject, input.Body, recipients); err != nil {
			respondInternalError(c, cfg, err)
			return
		}

		campaign := models.NewsletterCampaign{
			ID:             utils.NewID("newsletter-campaign"),
			Subject:        input.Subject,
			Body:           input.Body,
			RecipientCount: len(recipients),
			SentAt:         time.Now(),
		}
		if err := st.InsertNewsletterCampaign(ctx, campaign); err != nil {
			respondInternalError(c, cfg, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"ok":             true,
			"campaign":       campaign,
			"recipientCount": campaign.RecipientCount,
		})
	}
}
