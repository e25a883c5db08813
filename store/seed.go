package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	models "github.com/femifunmi/foundation-backend-go/models"
)

var seedGalleryItems = []models.GalleryItem{
	{
		ID:       "gallery-1",
		Type:     models.MediaTypePhoto,
		Title:    "Community Outreach Program",
		Location: "Ikeja, Lagos",
		Address:  "Lagos, Nigeria",
		Date:     "January 2026",
		MediaURL: "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?auto=format&fit=crop&w=1200&q=80",
	},
}

var seedRecentUpdates = []models.RecentUpdate{
	{
		ID:          "update-1",
		Title:       "School Support Outreach in Ikeja",
		Description: "Our outreach team visited community schools in Ikeja and delivered education kits to pupils in need. Volunteers also held mentoring sessions with parents and teachers to understand each student's support needs and follow-up requirements.",
		Date:        "February 2026",
		Location:    "Ikeja, Lagos",
		MainMediaID: "update-1-media-1",
		Media: []models.MediaAsset{
			{
				ID:       "update-1-media-1",
				Type:     models.MediaTypePhoto,
				MediaURL: "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?auto=format&fit=crop&w=1200&q=80",
				Caption:  "Children receiving school support packs.",
			},
			{
				ID:       "update-1-media-2",
				Type:     models.MediaTypePhoto,
				MediaURL: "https://images.unsplash.com/photo-1542816417-0983670d98b9?auto=format&fit=crop&w=1200&q=80",
				Caption:  "Volunteer team coordinating the distribution.",
			},
		},
	},
}

var seedUpcomingEvents = []models.UpcomingEvent{
	{
		ID:          "event-1",
		Title:       "Back-to-School Community Drive",
		Description: "The foundation will support school-age children with educational kits, mentorship sessions, and parent engagement support.",
		DateISO:     "2026-03-28T10:00:00+01:00",
		Location:    "Ikeja, Lagos",
		ImageURL:    "https://images.unsplash.com/photo-1509062522246-3755977927d7?auto=format&fit=crop&w=1200&q=80",
	},
}

var seedDonationCases = []models.DonationCase{
	{
		ID:           "case-1",
		Title:        "Support children in orphanage homes",
		Beneficiary:  "Orphanage Homes",
		Description:  "Provide food packages, school supplies, and medical support for children.",
		TargetAmount: "$5,000",
		MediaType:    models.MediaTypePhoto,
		MediaURL:     "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?auto=format&fit=crop&w=1200&q=80",
		Status:       "open",
	},
}

var seedDonationContent = models.DonationContent{
	IntroText:           "A description of the person in need is posted here with pictures or videos of the person or group of persons.",
	MissionText:         "Save a life today by donating towards this mission, and surely you will be richly blessed.",
	PaymentHeading:      "Make Payment Here",
	PaymentDescription:  "Online payment platform and affiliated banks for direct deposits and bank transfer can be made here.",
	OnlinePlatformLabel: "Donate Securely Online",
	OnlinePlatformURL:   "https://www.femifunmicharity.org",
	BankTransferDetails: []string{
		"FEMIFUNMI CHARITY ORGANISATION - Zenith Bank - 1234567890",
		"FEMIFUNMI CHARITY ORGANISATION - GTBank - 0123456789",
	},
}

// ensureSeedData inserts starter content into collections that are
// still empty so a fresh database renders a non-empty site.
func (s *Store) ensureSeedData(ctx context.Context) error {
	if err := s.seedCollection(ctx, colGalleryItems, len(seedGalleryItems), func() error {
		for _, item := range seedGalleryItems {
			if err := s.insertOne(ctx, colGalleryItems, item); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := s.seedCollection(ctx, colRecentUpdates, len(seedRecentUpdates), func() error {
		for _, update := range seedRecentUpdates {
			if err := s.insertOne(ctx, colRecentUpdates, update); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := s.seedCollection(ctx, colUpcomingEvents, len(seedUpcomingEvents), func() error {
		for _, event := range seedUpcomingEvents {
			if err := s.insertOne(ctx, colUpcomingEvents, event); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := s.seedCollection(ctx, colDonationCases, len(seedDonationCases), func() error {
		for _, donationCase := range seedDonationCases {
			if err := s.insertOne(ctx, colDonationCases, donationCase); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return s.seedCollection(ctx, colDonationContent, 1, func() error {
		return s.insertOne(ctx, colDonationContent, seedDonationContent)
	})
}

// seedCollection runs insert when the collection is empty and there is
// seed content to write.
func (s *Store) seedCollection(ctx context.Context, name string, seedLen int, insert func() error) error {
	if seedLen == 0 {
		return nil
	}

	count, err := s.collection(name).CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return insert()
}
