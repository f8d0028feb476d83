package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "normalizer", cfg.Service.Name)
	assert.Equal(t, defaultServicePort, cfg.Service.Port)
	assert.True(t, cfg.Pipeline.EnableDeduplication)
	assert.InDelta(t, defaultDedupThreshold, cfg.Pipeline.DeduplicationThreshold, 0.001)
	assert.Equal(t, defaultBatchSize, cfg.Pipeline.BatchSize)
	assert.Equal(t, "USD", cfg.Pipeline.DefaultCurrency)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	os.Setenv("PIPELINE_BATCH_SIZE", "25")
	defer os.Unsetenv("PIPELINE_BATCH_SIZE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Pipeline.BatchSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "bad port", mutate: func(c *Config) { c.Service.Port = 0 }, wantErr: true},
		{name: "threshold above one", mutate: func(c *Config) { c.Pipeline.DeduplicationThreshold = 1.5 }, wantErr: true},
		{name: "zero batch size", mutate: func(c *Config) { c.Pipeline.BatchSize = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	lc := cfg.LoggerConfig()
	assert.Equal(t, cfg.Logging.Level, lc.Level)
	assert.Equal(t, cfg.Logging.Format, lc.Format)
}
