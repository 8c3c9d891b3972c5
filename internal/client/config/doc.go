// Package config loads runtime configuration for the FitTrack terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables.
//  4. Command-line flags.
//
// # Environment
//
//	FITTRACK_API_URL          base URL of the API (VITE_API_URL is honoured too)
//	FITTRACK_DB_PATH          session database file
//	FITTRACK_REQUEST_TIMEOUT  Go duration, e.g. "10s"
//	FITTRACK_LOG_LEVEL        debug | info | warn | error
//
// # Flags
//
//	-a string   API base URL
//	-d string   session database file
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "api_url": "http://localhost:8080",
//	  "db_path": "fittrack.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
//
// Invalid input in any source panics; the CLI entry point recovers and
// reports it.
package config
