package store

import (
	"context"

	models "github.com/femifunmi/foundation-backend-go/models"
)

// Recent updates carry large embedded media lists, so this collection
// has always used targeted single-document operations.

func (s *Store) ListRecentUpdates(ctx context.Context) ([]models.RecentUpdate, error) {
	updates := []models.RecentUpdate{}
	if err := s.listAll(ctx, colRecentUpdates, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

func (s *Store) GetRecentUpdate(ctx context.Context, id string) (models.RecentUpdate, error) {
	var update models.RecentUpdate
	err := s.findByID(ctx, colRecentUpdates, id, &update)
	return update, err
}

func (s *Store) InsertRecentUpdate(ctx context.Context, update models.RecentUpdate) error {
	return s.insertOne(ctx, colRecentUpdates, update)
}

func (s *Store) ReplaceRecentUpdate(ctx context.Context, id string, update models.RecentUpdate) error {
	return s.replaceByID(ctx, colRecentUpdates, id, update)
}

func (s *Store) DeleteRecentUpdate(ctx context.Context, id string) error {
	return s.deleteByID(ctx, colRecentUpdates, id)
}
