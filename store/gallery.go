package store

import (
	"context"

	models "github.com/femifunmi/foundation-backend-go/models"
)

func (s *Store) ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	items := []models.GalleryItem{}
	if err := s.listAll(ctx, colGalleryItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetGalleryItem(ctx context.Context, id string) (models.GalleryItem, error) {
	var item models.GalleryItem
	err := s.findByID(ctx, colGalleryItems, id, &item)
	return item, err
}

// InsertGalleryItem writes a new item. When the item carries the
// priority flag, every sibling loses it first.
func (s *Store) InsertGalleryItem(ctx context.Context, item models.GalleryItem) error {
	if !item.PriorityPlacement {
		return s.insertOne(ctx, colGalleryItems, item)
	}

	return applyPriorityWrite(s.collectionLock(colGalleryItems),
		func() error { return s.clearPriorityExcept(ctx, colGalleryItems, item.ID) },
		func() error { return s.insertOne(ctx, colGalleryItems, item) },
	)
}

// ReplaceGalleryItem swaps the full document for id, maintaining the
// priority invariant the same way InsertGalleryItem does.
func (s *Store) ReplaceGalleryItem(ctx context.Context, id string, item models.GalleryItem) error {
	if !item.PriorityPlacement {
		return s.replaceByID(ctx, colGalleryItems, id, item)
	}

	return applyPriorityWrite(s.collectionLock(colGalleryItems),
		func() error { return s.clearPriorityExcept(ctx, colGalleryItems, id) },
		func() error { return s.replaceByID(ctx, colGalleryItems, id, item) },
	)
}

func (s *Store) DeleteGalleryItem(ctx context.Context, id string) error {
	return s.deleteByID(ctx, colGalleryItems, id)
}
