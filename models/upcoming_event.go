package models

type UpcomingEvent struct {
	ID                string `bson:"id" json:"id"`
	Title             string `bson:"title" json:"title"`
	Description       string `bson:"description" json:"description"`
	DateISO           string `bson:"dateIso" json:"dateIso"`
	Location          string `bson:"location" json:"location"`
	ImageURL          string `bson:"imageUrl" json:"imageUrl"`
	PriorityPlacement bool   `bson:"priorityplacement" json:"priorityplacement"`
}
