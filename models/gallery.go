package models

type GalleryItem struct {
	ID                string       `bson:"id" json:"id"`
	Type              string       `bson:"type" json:"type"` // photo, video
	DonateeName       string       `bson:"donateeName,omitempty" json:"donateeName,omitempty"`
	Title             string       `bson:"title" json:"title"`
	Description       string       `bson:"description,omitempty" json:"description,omitempty"`
	Location          string       `bson:"location" json:"location"`
	Address           string       `bson:"address" json:"address"`
	Date              string       `bson:"date" json:"date"`
	MediaURL          string       `bson:"mediaUrl" json:"mediaUrl"`
	PriorityPlacement bool         `bson:"priorityplacement" json:"priorityplacement"`
	ExtraMedia        []MediaAsset `bson:"extraMedia" json:"extraMedia"`
}
