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

const donationProofUploadFolder = "femifunmi-foundation/donation-proofs"

type donationInput struct {
	DonationGalleryItemID string `form:"donationGalleryItemId" binding:"required"`
	DonationTitle         string `form:"donationTitle" binding:"required"`
	FirstName             string `form:"firstName" binding:"required"`
	LastName              string `form:"lastName" binding:"required"`
	Email                 string `form:"email" binding:"required,email"`
	Country               string `form:"country" binding:"required"`
	PhoneCountryCode      string `form:"phoneCountryCode" binding:"required"`
	Mobile                string `form:"mobile" binding:"required"`
	PaymentMethod         string `form:"paymentMethod" binding:"required"`
	PaystackReference     string `form:"paystackReference"`
	AmountNaira           int    `form:"amountNaira"`
}

// ---------------- CREATE ----------------
// Donors submit transactions without authentication. Direct transfers
// must attach a payment proof screenshot and start in pending-review;
// paystack transactions start in pending and are settled by the gateway
// callback.
func CreateDonationTransaction(cfg *config.Config, st *store.Store, up *utils.MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input donationInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.IsValidPaymentMethod(input.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentMethod must be paystack or direct-transfer"})
			return
		}

		var proofImageURL string
		if input.PaymentMethod == models.PaymentMethodDirectTransfer {
			form, err := c.MultipartForm()
			if err != nil && err != http.ErrNotMultipart {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
				return
			}
			if form == nil || len(form.File["proofImage"]) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Payment confirmation screenshot is required."})
				return
			}

			uploaded, err := uploadSingleFile(c.Request.Context(), form.File["proofImage"][0], donationProofUploadFolder, "image", up)
			if err != nil {
				respondMediaError(c, cfg, err)
				return
			}
			proofImageURL = uploaded.SecureURL
		}

		now := time.Now()
		donation := models.DonationTransaction{
			ID:                    utils.NewID("donation"),
			DonationGalleryItemID: input.DonationGalleryItemID,
			DonationTitle:         input.DonationTitle,
			FirstName:             input.FirstName,
			LastName:              input.LastName,
			Email:                 utils.NormalizeEmail(input.Email),
			Country:               input.Country,
			PhoneCountryCode:      input.PhoneCountryCode,
			Mobile:                input.Mobile,
			PaymentMethod:         input.PaymentMethod,
			TransactionStatus:     models.InitialTransactionStatus(input.PaymentMethod),
			ProofImageURL:         proofImageURL,
			PaystackReference:     input.PaystackReference,
			AmountNaira:           input.AmountNaira,
			CreatedAt:             now,
			UpdatedAt:             now,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := st.InsertDonationTransaction(ctx, donation); err != nil {
			respondInternalError(c, cfg, err)
			return
		}
		c.JSON(http.StatusCreated, donation)
	}
}

// ---------------- LIST ----------------
func ListDonationTransactions(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		transactions, err := st.ListDonationTransactions(ctx)
		if err != nil {
			respondInternalError(c, cfg, err)
			return
		}

		if len(transactions) == 0 {
			c.JSON(http.StatusOK, transactions)
			return
		}

		// --- Pick the most recently updated transaction ---
		latest := transactions[0]
		for _, tx := range transactions {
			if tx.UpdatedAt.After(latest.UpdatedAt) {
				latest = tx
			}
		}

		// --- Generate ETag from latest transaction ---
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, transactions)
	}
}

// ---------------- STATUS ----------------
// Only direct transfer transactions accept manual status edits, and
// only between the review states.
func UpdateDonationStatus(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			TransactionStatus string `json:"transactionStatus" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.IsManualTransactionStatus(input.TransactionStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "transactionStatus must be pending-review, approved or rejected"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		tx, err := st.GetDonationTransaction(ctx, c.Param("id"))
		if err != nil {
			respondStoreError(c, cfg, err, "donation transaction not found")
			return
		}
		if !tx.AllowsManualStatus() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only direct transfer transactions can be updated manually."})
			return
		}

		updated, err := st.UpdateDonationStatus(ctx, tx.ID, input.TransactionStatus)
		if err != nil {
			respondStoreError(c, cfg, err, "donation transaction not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
