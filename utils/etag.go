package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateETag derives a strong ETag from a record id and its last
// update time.
func GenerateETag(id string, updatedAt time.Time) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s:%d", id, updatedAt.UnixNano())))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
