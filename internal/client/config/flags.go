package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/flagx"
)

// parseFlags overlays cfg with -a, -d, -t and -l. Other arguments are left
// for the rest of the program.
func parseFlags(cfg *Config) {
	// -1 means -t was not given; the earlier sources keep their value.
	var timeout int
	err := flagx.ParseSubset("main", os.Args[1:], []string{"a", "d", "t", "l"}, func(fs *flag.FlagSet) {
		fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "API base URL")
		fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "session database file")
		fs.IntVar(&timeout, "t", -1, "request timeout (in seconds, 0 = none)")
		fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	})
	if err != nil {
		panic(err)
	}

	if timeout >= 0 {
		cfg.RequestTimeout = time.Duration(timeout) * time.Second
	}
}
