package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/femifunmi/foundation-backend-go/config"
	store "github.com/femifunmi/foundation-backend-go/store"
)

// requestError marks a failure caused by the request payload itself
// (bad descriptor JSON, dangling file index, oversized file). Handlers
// answer these with 400 instead of 500.
type requestError struct {
	message string
}

func (e *requestError) Error() string {
	return e.message
}

func newRequestError(message string) error {
	return &requestError{message: message}
}

// respondStoreError maps a persistence failure to 404 or 500.
func respondStoreError(c *gin.Context, cfg *config.Config, err error, notFoundMessage string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}
	respondInternalError(c, cfg, err)
}

// respondInternalError logs the failure and returns its message, unless
// production mode is on, which hides internal detail from clients.
func respondInternalError(c *gin.Context, cfg *config.Config, err error) {
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)

	message := "internal server error"
	if !cfg.Production && err != nil {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// respondMediaError distinguishes request-level reconciliation failures
// from upload/store failures.
func respondMediaError(c *gin.Context, cfg *config.Config, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": reqErr.message})
		return
	}
	respondInternalError(c, cfg, err)
}
