package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	config "github.com/femifunmi/foundation-backend-go/config"
)

func adminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{AdminKey: "letmein"}
	r := gin.New()
	r.GET("/admin", AdminAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuthRejectsMissingKey(t *testing.T) {
	r := adminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestAdminAuthRejectsWrongKey(t *testing.T) {
	r := adminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("x-admin-key", "guess")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthAcceptsCorrectKey(t *testing.T) {
	r := adminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("x-admin-key", "letmein")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
