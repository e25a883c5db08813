package store

import (
	"context"

	models "github.com/femifunmi/foundation-backend-go/models"
)

func (s *Store) ListUpcomingEvents(ctx context.Context) ([]models.UpcomingEvent, error) {
	events := []models.UpcomingEvent{}
	if err := s.listAll(ctx, colUpcomingEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) GetUpcomingEvent(ctx context.Context, id string) (models.UpcomingEvent, error) {
	var event models.UpcomingEvent
	err := s.findByID(ctx, colUpcomingEvents, id, &event)
	return event, err
}

func (s *Store) InsertUpcomingEvent(ctx context.Context, event models.UpcomingEvent) error {
	if !event.PriorityPlacement {
		return s.insertOne(ctx, colUpcomingEvents, event)
	}

	return applyPriorityWrite(s.collectionLock(colUpcomingEvents),
		func() error { return s.clearPriorityExcept(ctx, colUpcomingEvents, event.ID) },
		func() error { return s.insertOne(ctx, colUpcomingEvents, event) },
	)
}

func (s *Store) ReplaceUpcomingEvent(ctx context.Context, id string, event models.UpcomingEvent) error {
	if !event.PriorityPlacement {
		return s.replaceByID(ctx, colUpcomingEvents, id, event)
	}

	return applyPriorityWrite(s.collectionLock(colUpcomingEvents),
		func() error { return s.clearPriorityExcept(ctx, colUpcomingEvents, id) },
		func() error { return s.replaceByID(ctx, colUpcomingEvents, id, event) },
	)
}

func (s *Store) DeleteUpcomingEvent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, colUpcomingEvents, id)
}
