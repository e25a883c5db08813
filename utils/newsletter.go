package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	models "github.com/femifunmi/foundation-backend-go/models"
)

// newsletter delivery payload for the external webhook provider
type newsletterDelivery struct {
	Subject    string                        `json:"subject"`
	Body       string                        `json:"body"`
	Recipients []models.NewsletterSubscriber `json:"recipients"`
}

var newsletterClient = &http.Client{Timeout: 30 * time.Second}

// DeliverNewsletterBatch posts a campaign to the configured webhook. An
// empty webhook URL is not an error: the send is logged and skipped so
// campaigns can still be recorded in environments without a provider.
func DeliverNewsletterBatch(webhookURL, subject, body string, recipients []models.NewsletterSubscriber) error {
	if webhookURL == "" {
		log.Printf("[NEWSLETTER] NEWSLETTER_WEBHOOK_URL not set. Skipping external delivery for %d recipient(s).", len(recipients))
		return nil
	}

	payload := newsletterDelivery{
		Subject:    subject,
		Body:       body,
		Recipients: recipients,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal newsletter payload: %v", err)
		return err
	}

	req, err := http.NewRequest(http.MethodPost, webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("Failed to create newsletter request: %v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := newsletterClient.Do(req)
	if err != nil {
		log.Printf("Failed to deliver newsletter: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Newsletter provider returned status %s", resp.Status)
		return fmt.Errorf("newsletter delivery provider returned an error: %s", resp.Status)
	}

	log.Printf("Newsletter delivered to %d recipient(s)", len(recipients))
	return nil
}
