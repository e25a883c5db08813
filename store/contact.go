package store

import (
	"context"

	models "github.com/femifunmi/foundation-backend-go/models"
)

func (s *Store) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	if err := s.listAll(ctx, colContactMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Store) InsertContactMessage(ctx context.Context, message models.ContactMessage) error {
	return s.insertOne(ctx, colContactMessages, message)
}
