package controllers

import (
	"testing"

	"github.com/stretchr/testify/require"

	models "github.com/femifunmi/foundation-backend-go/models"
)

func TestMainMediaIDForClampsIndex(t *testing.T) {
	media := []models.MediaAsset{{ID: "m-0"}, {ID: "m-1"}, {ID: "m-2"}}

	require.Equal(t, "m-0", mainMediaIDFor(media, nil))
	require.Equal(t, "m-1", mainMediaIDFor(media, intPtr(1)))
	require.Equal(t, "m-0", mainMediaIDFor(media, intPtr(-4)))
	require.Equal(t, "m-2", mainMediaIDFor(media, intPtr(99)))
}

func TestMainMediaIDForAlwaysReferencesMedia(t *testing.T) {
	media := []models.MediaAsset{{ID: "m-0"}, {ID: "m-1"}}

	for _, requested := range []*int{nil, intPtr(-1), intPtr(0), intPtr(1), intPtr(7)} {
		id := mainMediaIDFor(media, requested)

		found := false
		for _, m := range media {
			if m.ID == id {
				found = true
			}
		}
		require.True(t, found, "id %q not in media list", id)
	}
}
