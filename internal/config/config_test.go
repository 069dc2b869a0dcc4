package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDisplayName(t *testing.T) {
	name := GenerateDisplayName()
	require.True(t, strings.HasPrefix(name, "guest-"))
	require.Greater(t, len(name), len("guest-"))
}
