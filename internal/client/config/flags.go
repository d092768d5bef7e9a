package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfiles/internal/flagx"
)

var knownFlags = []string{"-a", "-i", "-t", "-d", "-v", "-b"}

// parseFlags populates cfg from command-line flags.
//
//	-a string   API base URL
//	-i int      online check interval in seconds
//	-t int      request timeout in seconds
//	-d string   session database path
//	-v          verbose logging
//	-b          wait for the reconciling refresh after each mutation
//
// Only the flags above are looked at; -c/-config is handled by parseJson.
// -i and -t replace the current durations only when given, so sub-second
// values from the JSON layer survive.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("gophfiles", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base URL of the file-storage API")
	onlineCheck := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database path")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	fs.BoolVar(&cfg.BlockingRefresh, "b", cfg.BlockingRefresh, "wait for refresh after mutations")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheck) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})

	if cfg.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", cfg.OnlineCheckInterval)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", cfg.RequestTimeout)
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return nil
}
