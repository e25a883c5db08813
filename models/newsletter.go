package models

import "time"

// NewsletterSubscriber is soft-deleted only: unsubscribe clears IsActive
// and stamps UnsubscribedAt, the record itself is never removed.
type NewsletterSubscriber struct {
	ID             string     `bson:"id" json:"id"`
	FirstName      string     `bson:"firstName" json:"firstName"`
	Email          string     `bson:"email" json:"email"`
	ConsentGiven   bool       `bson:"consentGiven" json:"consentGiven"`
	IsActive       bool       `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UnsubscribedAt *time.Time `bson:"unsubscribedAt,omitempty" json:"unsubscribedAt,omitempty"`
	Source         string     `bson:"source,omitempty" json:"source,omitempty"`
}

// NewsletterCampaign is immutable once created; campaigns form an
// append-only log of sends.
type NewsletterCampaign struct {
	ID             string    `bson:"id" json:"id"`
	Subject        string    `bson:"subject" json:"subject"`
	Body           string    `bson:"body" json:"body"`
	RecipientCount int       `bson:"recipientCount" json:"recipientCount"`
	SentAt         time.Time `bson:"sentAt" json:"sentAt"`
}
