package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateETag(t *testing.T) {
	at := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

	tag := GenerateETag("donation-1", at)
	require.True(t, len(tag) > 2)
	require.Equal(t, byte('"'), tag[0])
	require.Equal(t, byte('"'), tag[len(tag)-1])

	// Stable for the same inputs, different for any change.
	require.Equal(t, tag, GenerateETag("donation-1", at))
	require.NotEqual(t, tag, GenerateETag("donation-2", at))
	require.NotEqual(t, tag, GenerateETag("donation-1", at.Add(time.Second)))
}
