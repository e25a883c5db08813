package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/femifunmi/foundation-backend-go/config"
	controllers "github.com/femifunmi/foundation-backend-go/controllers"
	middleware "github.com/femifunmi/foundation-backend-go/middleware"
	store "github.com/femifunmi/foundation-backend-go/store"
	utils "github.com/femifunmi/foundation-backend-go/utils"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, st *store.Store, up *utils.MediaUploader) {
	admin := middleware.AdminAuth(cfg)

	api := r.Group("/api")

	api.GET("/health", controllers.HealthCheck())
	api.POST("/uploads", admin, controllers.CreateUpload(cfg, up))

	gallery := api.Group("/gallery")
	{
		gallery.GET("", controllers.ListGalleryItems(cfg, st))
		gallery.GET("/:id", controllers.GetGalleryItem(cfg, st))
		gallery.POST("", admin, controllers.CreateGalleryItem(cfg, st, up))
		gallery.PUT("/:id", admin, controllers.UpdateGalleryItem(cfg, st, up))
		gallery.DELETE("/:id", admin, controllers.DeleteGalleryItem(cfg, st))
	}

	updates := api.Group("/recent-updates")
	{
		updates.GET("", controllers.ListRecentUpdates(cfg, st))
		updates.GET("/:id", controllers.GetRecentUpdate(cfg, st))
		updates.POST("", admin, controllers.CreateRecentUpdate(cfg, st, up))
		updates.PUT("/:id", admin, controllers.UpdateRecentUpdate(cfg, st, up))
		updates.DELETE("/:id", admin, controllers.DeleteRecentUpdate(cfg, st))
	}

	events := api.Group("/upcoming-events")
	{
		events.GET("", controllers.ListUpcomingEvents(cfg, st))
		events.GET("/:id", controllers.GetUpcomingEvent(cfg, st))
		events.POST("", admin, controllers.CreateUpcomingEvent(cfg, st, up))
		events.PUT("/:id", admin, controllers.UpdateUpcomingEvent(cfg, st, up))
		events.DELETE("/:id", admin, controllers.DeleteUpcomingEvent(cfg, st))
	}

	donations := api.Group("/donations")
	{
		donations.POST("", controllers.CreateDonationTransaction(cfg, st, up))
		donations.GET("", admin, controllers.ListDonationTransactions(cfg, st))
		donations.PATCH("/:id/status", admin, controllers.UpdateDonationStatus(cfg, st))
	}

	api.GET("/cases", controllers.ListDonationCases(cfg, st))
	api.POST("/cases", admin, controllers.CreateDonationCase(cfg, st))
	api.GET("/donation-content", controllers.GetDonationContent(cfg, st))
	api.PUT("/donation-content", admin, controllers.UpdateDonationContent(cfg, st))

	api.POST("/contact", controllers.CreateContactMessage(cfg, st))
	api.GET("/contact-messages", admin, controllers.ListContactMessages(cfg, st))

	newsletter := api.Group("/newsletter")
	{
		newsletter.POST("/subscribe", controllers.SubscribeNewsletter(cfg, st))
		newsletter.POST("/unsubscribe", controllers.UnsubscribeNewsletter(cfg, st))
		newsletter.GET("/subscribers", admin, controllers.ListNewsletterSubscribers(cfg, st))
		newsletter.GET("/campaigns", admin, controllers.ListNewsletterCampaigns(cfg, st))
		newsletter.POST("/send", admin, controllers.SendNewsletterCampaign(cfg, st))
	}
}
