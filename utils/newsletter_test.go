package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	models "github.com/femifunmi/foundation-backend-go/models"
)

func TestDeliverNewsletterBatchSkipsWithoutWebhook(t *testing.T) {
	err := DeliverNewsletterBatch("", "Subject", "Body", []models.NewsletterSubscriber{{Email: "a@example.com"}})
	require.NoError(t, err)
}

func TestDeliverNewsletterBatchPostsPayload(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	recipients := []models.NewsletterSubscriber{
		{Email: "a@example.com", FirstName: "Ada"},
		{Email: "b@example.com", FirstName: "Bayo"},
	}
	err := DeliverNewsletterBatch(server.URL, "March update", "Hello!", recipients)
	require.NoError(t, err)

	require.Equal(t, "March update", received["subject"])
	require.Equal(t, "Hello!", received["body"])
	require.Len(t, received["recipients"], 2)
}

func TestDeliverNewsletterBatchProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := DeliverNewsletterBatch(server.URL, "Subject", "Body", nil)
	require.Error(t, err)
}
