package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a := NewID("gallery")
	b := NewID("gallery")
	require.True(t, strings.HasPrefix(a, "gallery-"))
	require.NotEqual(t, a, b)
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "donor@example.com", NormalizeEmail("  Donor@Example.COM "))
}

func TestParseFormBool(t *testing.T) {
	for _, truthy := range []string{"true", "TRUE", "1", "on", " On "} {
		require.True(t, ParseFormBool(truthy), truthy)
	}
	for _, falsy := range []string{"", "false", "0", "off", "no", "yes please"} {
		require.False(t, ParseFormBool(falsy), falsy)
	}
}
