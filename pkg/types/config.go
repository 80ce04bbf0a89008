// Package types provides configuration types for the journal backend.
package types

import "time"

// Config represents the full service configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server" json:"server"`
	Analytics AnalyticsConfig `mapstructure:"analytics" json:"analytics"`
	Logging   LoggingConfig   `mapstructure:"logging" json:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host          string        `mapstructure:"host" json:"host"`
	Port          int           `mapstructure:"port" json:"port"`
	WebSocketPath string        `mapstructure:"websocket_path" json:"websocketPath"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout" json:"readTimeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout" json:"writeTimeout"`
	CORSOrigins   []string      `mapstructure:"cors_origins" json:"corsOrigins"`
	EnableMetrics bool          `mapstructure:"enable_metrics" json:"enableMetrics"`
}

// AnalyticsConfig represents analytics defaults. Balance and bucket width are
// string-typed settings parsed downstream; unparseable values fall back to
// the store defaults rather than failing the boot.
type AnalyticsConfig struct {
	StartingBalance string          `mapstructure:"starting_balance" json:"startingBalance"`
	BucketWidth     string          `mapstructure:"bucket_width" json:"bucketWidth"`
	Timezone        string          `mapstructure:"timezone" json:"timezone"`
	Sessions        []SessionWindow `mapstructure:"sessions" json:"sessions"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level" json:"level"`
}

// SessionWindow represents one configured time-of-day classification window.
// Start and End are "HH:MM" clock times; End is exclusive.
type SessionWindow struct {
	Name  string `mapstructure:"name" json:"name"`
	Start string `mapstructure:"start" json:"start"`
	End   string `mapstructure:"end" json:"end"`
}

// DefaultSessionWindows returns the placeholder US cash-session partition
// used when no sessions are configured. The boundaries are not business
// rules; any table supplied via configuration replaces them wholesale.
func DefaultSessionWindows() []SessionWindow {
	return []SessionWindow{
		{Name: "Cash Open", Start: "09:30", End: "10:30"},
		{Name: "Midday", Start: "10:30", End: "15:00"},
		{Name: "Power Hour", Start: "15:00", End: "16:00"},
	}
}
