package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	config "github.com/femifunmi/foundation-backend-go/config"
	routes "github.com/femifunmi/foundation-backend-go/routes"
	store "github.com/femifunmi/foundation-backend-go/store"
	utils "github.com/femifunmi/foundation-backend-go/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	st, err := store.Connect(ctx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatalf("store error: %v", err)
	}

	up, err := utils.NewMediaUploader(
		cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret,
		cfg.UploadTimeout, cfg.UploadRetryCount,
	)
	if err != nil {
		log.Fatalf("uploader error: %v", err)
	}

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.MaxMultipartMemory = config.MaxUploadBytes
	r.Use(corsMiddleware(cfg))
	routes.SetupRoutes(r, cfg, st, up)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("FemiFunmi Charity API listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop, cancelStop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancelStop()
	<-stop.Done()

	log.Println("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Printf("store shutdown: %v", err)
	}
}

// corsMiddleware allows the configured client and admin origins plus
// any localhost origin for development.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := map[string]bool{
		cfg.ClientOrigin: true,
		cfg.AdminOrigin:  true,
	}

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if allowed[origin] {
				return true
			}
			parsed, err := url.Parse(origin)
			if err != nil {
				return false
			}
			host := parsed.Hostname()
			return host == "localhost" || host == "127.0.0.1"
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "If-None-Match", "x-admin-key"},
		ExposeHeaders:    []string{"ETag", "Last-Modified"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
