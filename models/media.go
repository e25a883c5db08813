package models

// MediaAsset is a single hosted photo or video owned by exactly one
// parent record (gallery item or recent update).
type MediaAsset struct {
	ID       string `bson:"id" json:"id"`
	Type     string `bson:"type" json:"type"` // photo, video
	MediaURL string `bson:"mediaUrl" json:"mediaUrl"`
	Caption  string `bson:"caption,omitempty" json:"caption,omitempty"`
}

const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

func IsValidMediaType(value string) bool {
	return value == MediaTypePhoto || value == MediaTypeVideo
}
