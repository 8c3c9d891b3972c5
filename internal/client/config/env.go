package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// parseEnv overlays cfg with FITTRACK_* environment variables.
func parseEnv(cfg *Config) {
	v := viper.New()
	bind := func(key string, envs ...string) {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			panic(err)
		}
	}
	bind("api_url", "FITTRACK_API_URL", "VITE_API_URL")
	bind("db_path", "FITTRACK_DB_PATH")
	bind("request_timeout", "FITTRACK_REQUEST_TIMEOUT")
	bind("log_level", "FITTRACK_LOG_LEVEL")

	if s := v.GetString("api_url"); s != "" {
		cfg.APIURL = s
	}
	if s := v.GetString("db_path"); s != "" {
		cfg.DBPath = s
	}
	if s := v.GetString("request_timeout"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			panic(fmt.Errorf("FITTRACK_REQUEST_TIMEOUT: %w", err))
		}
		cfg.RequestTimeout = d
	}
	if s := v.GetString("log_level"); s != "" {
		cfg.LogLevel = s
	}
}
