package models

import "time"

type ContactMessage struct {
	ID          string    `bson:"id" json:"id"`
	FullName    string    `bson:"fullName" json:"fullName"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Message     string    `bson:"message" json:"message"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
