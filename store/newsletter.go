package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	models "github.com/femifunmi/foundation-backend-go/models"
	utils "github.com/femifunmi/foundation-backend-go/utils"
)

func (s *Store) ListNewsletterSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	subscribers := []models.NewsletterSubscriber{}
	if err := s.listAll(ctx, colNewsletterSubscribers, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

// ListActiveRecipients returns subscribers eligible for a campaign send.
func (s *Store) ListActiveRecipients(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	cursor, err := s.collection(colNewsletterSubscribers).Find(ctx, bson.M{
		"isActive":     true,
		"consentGiven": true,
	})
	if err != nil {
		return nil, err
	}

	recipients := []models.NewsletterSubscriber{}
	if err := cursor.All(ctx, &recipients); err != nil {
		return nil, err
	}
	return recipients, nil
}

// UpsertNewsletterSubscriber subscribes an email address. An existing
// subscriber (matched by normalized email) is re-activated in place and
// takes the caller's latest firstName and source; the returned flag
// reports whether the address was already known.
func (s *Store) UpsertNewsletterSubscriber(ctx context.Context, firstName, email, source string) (models.NewsletterSubscriber, bool, error) {
	normalized := utils.NormalizeEmail(email)
	col := s.collection(colNewsletterSubscribers)

	var existing models.NewsletterSubscriber
	err := col.FindOne(ctx, bson.M{"email": normalized}).Decode(&existing)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewsletterSubscriber{}, false, err
	}

	if err == nil {
		existing.FirstName = firstName
		existing.Email = normalized
		existing.ConsentGiven = true
		existing.IsActive = true
		existing.Source = source
		existing.UnsubscribedAt = nil
		if err := s.replaceByID(ctx, colNewsletterSubscribers, existing.ID, existing); err != nil {
			return models.NewsletterSubscriber{}, false, err
		}
		return existing, true, nil
	}

	subscriber := models.NewsletterSubscriber{
		ID:           utils.NewID("newsletter-subscriber"),
		FirstName:    firstName,
		Email:        normalized,
		ConsentGiven: true,
		IsActive:     true,
		CreatedAt:    time.Now(),
		Source:       source,
	}
	if err := s.insertOne(ctx, colNewsletterSubscribers, subscriber); err != nil {
		return models.NewsletterSubscriber{}, false, err
	}
	return subscriber, false, nil
}

// DeactivateNewsletterSubscriber soft-deletes by email; the record stays.
func (s *Store) DeactivateNewsletterSubscriber(ctx context.Context, email string) error {
	now := time.Now()
	res, err := s.collection(colNewsletterSubscribers).UpdateOne(
		ctx,
		bson.M{"email": utils.NormalizeEmail(email)},
		bson.M{"$set": bson.M{"isActive": false, "unsubscribedAt": now}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListNewsletterCampaigns(ctx context.Context) ([]models.NewsletterCampaign, error) {
	campaigns := []models.NewsletterCampaign{}
	if err := s.listAll(ctx, colNewsletterCampaigns, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (s *Store) InsertNewsletterCampaign(ctx context.Context, campaign models.NewsletterCampaign) error {
	return s.insertOne(ctx, colNewsletterCampaigns, campaign)
}
