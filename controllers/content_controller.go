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

// ---------------- CASES ----------------
func ListDonationCases(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cases, err := st.ListDonationCases(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, cases)
	}
}

func CreateDonationCase(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Title        string `json:"title" binding:"required"`
			Beneficiary  string `json:"beneficiary" binding:"required"`
			Description  string `json:"description" binding:"required"`
			TargetAmount string `json:"targetAmount"`
			MediaType    string `json:"mediaType"`
			MediaURL     string `json:"mediaUrl"`
			Status       string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Status != "open" && input.Status != "closed" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be open or closed"})
			return
		}
		if input.MediaType != "" && !models.IsValidMediaType(input.MediaType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mediaType must be photo or video"})
			return
		}

		donationCase := models.DonationCase{
			ID:           utils.NewID("case"),
			Title:        input.Title,
			Beneficiary:  input.Beneficiary,
			Description:  input.Description,
			TargetAmount: input.TargetAmount,
			MediaType:    input.MediaType,
			MediaURL:     input.MediaURL,
			Status:       input.Status,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.InsertDonationCase(ctx, donationCase); err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, donationCase)
	}
}

// ---------------- DONATION CONTENT ----------------
func GetDonationContent(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		content, err := st.GetDonationContent(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

func UpdateDonationContent(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.DonationContent
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(input.BankTransferDetails) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one bank transfer detail is required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.ReplaceDonationContent(ctx, input); err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, input)
	}
}

// ---------------- CONTACT ----------------
func CreateContactMessage(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FullName    string `json:"fullName" binding:"required"`
			Email       string `json:"email" binding:"required,email"`
			PhoneNumber string `json:"phoneNumber" binding:"required"`
			Message     string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		message := models.ContactMessage{
			ID:          utils.NewID("message"),
			FullName:    input.FullName,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			Message:     input.Message,
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.InsertContactMessage(ctx, message); err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
}

func ListContactMessages(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		messages, err := st.ListContactMessages(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}
