// Package config loads service configuration from file, environment, and
// defaults via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/atlas-desktop/journal-backend/pkg/types"
)

// Load reads configuration from the given file path, or from config.* in the
// working directory and $HOME/.journal when path is empty. A missing default
// file is not an error; every key has a workable default. Environment
// variables override file values with a JOURNAL_ prefix and underscores for
// dots (JOURNAL_SERVER_PORT overrides server.port).
func Load(path string) (*types.Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.websocket_path", "/ws")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.enable_metrics", true)
	v.SetDefault("analytics.starting_balance", "28000")
	v.SetDefault("analytics.bucket_width", "100")
	v.SetDefault("analytics.timezone", "America/New_York")
	v.SetDefault("logging.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.journal")
	}

	v.SetEnvPrefix("JOURNAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Analytics.Sessions) == 0 {
		cfg.Analytics.Sessions = types.DefaultSessionWindows()
	}

	return &cfg, nil
}
