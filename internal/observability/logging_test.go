package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirefish/Wyrm/internal/config"
	"github.com/wirefish/Wyrm/internal/observability"
)

func TestNewLogger_ValidConfigs(t *testing.T) {
	cases := []config.LoggingConfig{
		{Level: "debug", Format: "console"},
		{Level: "info", Format: "json"},
		{Level: "warn", Format: "console"},
		{Level: "error", Format: "json"},
	}
	for _, cfg := range cases {
		t.Run(cfg.Level+"/"+cfg.Format, func(t *testing.T) {
			logger, err := observability.NewLogger(cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)
			logger.Info("constructed")
			_ = logger.Sync()
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := observability.NewLogger(config.LoggingConfig{Level: "verbose", Format: "console"})
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := observability.NewLogger(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
