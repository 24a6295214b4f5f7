// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Browser BrowserConfig `mapstructure:"browser" yaml:"browser"`
	Tour    TourConfig    `mapstructure:"tour" yaml:"tour"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// BrowserConfig holds settings for the headless browser instance.
type BrowserConfig struct {
	Headless          bool          `mapstructure:"headless" yaml:"headless"`
	IgnoreTLSErrors   bool          `mapstructure:"ignore_tls_errors" yaml:"ignore_tls_errors"`
	Debug             bool          `mapstructure:"debug" yaml:"debug"`
	Args              []string      `mapstructure:"args" yaml:"args"`
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout" yaml:"navigation_timeout"`
}

// TourConfig tunes the timing of the guided-tour engine.
type TourConfig struct {
	// TriggerParam is the URL query parameter whose value selects a walkthrough.
	TriggerParam string `mapstructure:"trigger_param" yaml:"trigger_param"`
	// SettleDelay is the pause after navigation before the first step runs,
	// giving the target application time to finish its initial render.
	SettleDelay time.Duration `mapstructure:"settle_delay" yaml:"settle_delay"`
	// StepDelay is the default pause between consecutive steps.
	StepDelay time.Duration `mapstructure:"step_delay" yaml:"step_delay"`
	// PollInterval is the fixed retry interval of element lookups.
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	// DefaultMaxWait bounds a single element lookup.
	DefaultMaxWait time.Duration `mapstructure:"default_max_wait" yaml:"default_max_wait"`
	// TypeCharDelay is the pause between synthesized keystrokes.
	TypeCharDelay time.Duration `mapstructure:"type_char_delay" yaml:"type_char_delay"`
	// PopupOffsetPx is the horizontal gap between a highlighted element and its popup.
	PopupOffsetPx int `mapstructure:"popup_offset_px" yaml:"popup_offset_px"`
	// CompletionBuffer is added to a highlight's display duration before the
	// sequencer moves on.
	CompletionBuffer time.Duration `mapstructure:"completion_buffer" yaml:"completion_buffer"`
}

// SetDefaults registers the default configuration values on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "tourguide")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.colors.debug", "magenta")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "red")
	v.SetDefault("logger.colors.panic", "red")
	v.SetDefault("logger.colors.fatal", "red")

	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.navigation_timeout", 30*time.Second)

	v.SetDefault("tour.trigger_param", "smartlink")
	v.SetDefault("tour.settle_delay", 2*time.Second)
	v.SetDefault("tour.step_delay", 500*time.Millisecond)
	v.SetDefault("tour.poll_interval", 100*time.Millisecond)
	v.SetDefault("tour.default_max_wait", 5*time.Second)
	v.SetDefault("tour.type_char_delay", 80*time.Millisecond)
	v.SetDefault("tour.popup_offset_px", 30)
	v.SetDefault("tour.completion_buffer", 100*time.Millisecond)
}

// Validate checks the configuration for values the engine cannot work with.
func (c *Config) Validate() error {
	if c.Tour.TriggerParam == "" {
		return fmt.Errorf("tour.trigger_param must not be empty")
	}
	if c.Tour.PollInterval <= 0 {
		return fmt.Errorf("tour.poll_interval must be positive, got %s", c.Tour.PollInterval)
	}
	if c.Tour.DefaultMaxWait < c.Tour.PollInterval {
		return fmt.Errorf("tour.default_max_wait (%s) must be at least one poll interval (%s)",
			c.Tour.DefaultMaxWait, c.Tour.PollInterval)
	}
	if c.Tour.TypeCharDelay < 0 {
		return fmt.Errorf("tour.type_char_delay must not be negative")
	}
	if c.Tour.StepDelay < 0 {
		return fmt.Errorf("tour.step_delay must not be negative")
	}
	if c.Browser.NavigationTimeout <= 0 {
		return fmt.Errorf("browser.navigation_timeout must be positive")
	}
	return nil
}
