package testcommon

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck-cli/internal/config"
)

// SetupConfigLogger installs a development logger named after the
// test, so interleaved suite output is attributable.
func SetupConfigLogger(t *testing.T) *zap.Logger {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	logger = logger.Named(t.Name())
	config.Logger = logger
	return logger
}
