// File: internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) Config {
	t.Helper()
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}

func TestSetDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "tourguide", cfg.Logger.ServiceName)

	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 30*time.Second, cfg.Browser.NavigationTimeout)

	assert.Equal(t, "smartlink", cfg.Tour.TriggerParam)
	assert.Equal(t, 2*time.Second, cfg.Tour.SettleDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Tour.StepDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.Tour.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.Tour.DefaultMaxWait)
	assert.Equal(t, 80*time.Millisecond, cfg.Tour.TypeCharDelay)
	assert.Equal(t, 30, cfg.Tour.PopupOffsetPx)
	assert.Equal(t, 100*time.Millisecond, cfg.Tour.CompletionBuffer)
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg := defaultConfig(t)
		require.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty trigger param", func(c *Config) { c.Tour.TriggerParam = "" }, "trigger_param"},
		{"zero poll interval", func(c *Config) { c.Tour.PollInterval = 0 }, "poll_interval"},
		{"wait below one interval", func(c *Config) { c.Tour.DefaultMaxWait = 50 * time.Millisecond }, "default_max_wait"},
		{"negative char delay", func(c *Config) { c.Tour.TypeCharDelay = -time.Millisecond }, "type_char_delay"},
		{"negative step delay", func(c *Config) { c.Tour.StepDelay = -time.Second }, "step_delay"},
		{"zero navigation timeout", func(c *Config) { c.Browser.NavigationTimeout = 0 }, "navigation_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
