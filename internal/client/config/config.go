package config

import "time"

// Config holds runtime settings for the FitTrack terminal client.
type Config struct {
	// APIURL is the base URL of the FitTrack REST API.
	APIURL string
	// DBPath is the SQLite file holding the persisted session.
	DBPath string
	// RequestTimeout bounds each API request. Zero means no timeout.
	RequestTimeout time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

const (
	DefaultAPIURL   = "http://localhost:8080"
	DefaultDBPath   = "fittrack.db"
	DefaultLogLevel = "info"
)

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = DefaultAPIURL
	c.DBPath = DefaultDBPath
	c.RequestTimeout = 0
	c.LogLevel = DefaultLogLevel
}

// LoadConfig applies defaults, then the JSON file, the environment and the
// command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
