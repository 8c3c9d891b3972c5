// Package flagx lets several packages read their own flags from os.Args
// without tripping over each other: each parser only sees the flags it
// declares.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags from args, together with their
// values. Both "-c conf.json" and "-c=conf.json" forms are understood; a
// following argument that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// ParseSubset defines flags on a fresh FlagSet via define, then parses the
// subset of args that belongs to those flags. Names are given without the
// leading dash.
func ParseSubset(name string, args []string, names []string, define func(fs *flag.FlagSet)) error {
	allowed := make([]string, 0, len(names))
	for _, n := range names {
		allowed = append(allowed, "-"+n)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(discard{})
	define(fs)
	return fs.Parse(FilterArgs(args, allowed))
}

// JsonConfigFlags returns the config file path given with -c or -config, or
// "" when neither is present.
func JsonConfigFlags() string {
	var config string
	_ = ParseSubset("json", os.Args[1:], []string{"c", "config"}, func(fs *flag.FlagSet) {
		fs.StringVar(&config, "config", "", "Path to config file")
		fs.StringVar(&config, "c", "", "Path to config file (short)")
	})
	return config
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
