package models

// RecentUpdate carries its full media list embedded; MainMediaID always
// references an element of Media.
type RecentUpdate struct {
	ID          string       `bson:"id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Date        string       `bson:"date" json:"date"`
	Location    string       `bson:"location" json:"location"`
	MainMediaID string       `bson:"mainMediaId" json:"mainMediaId"`
	Media       []MediaAsset `bson:"media" json:"media"`
}
