package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the gophfiles CLI.
type Config struct {
	// APIURL is the base URL of the file-storage API, without trailing slash.
	APIURL string
	// OnlineCheckInterval is how often the client probes server reachability.
	OnlineCheckInterval time.Duration
	// RequestTimeout bounds a single API request. Zero disables the bound.
	RequestTimeout time.Duration
	// SessionDB is the sqlite file holding the persisted credential.
	SessionDB string
	// BlockingRefresh makes mutations wait for their reconciling refresh
	// instead of running it in the background.
	BlockingRefresh bool
	// Verbose enables debug logging.
	Verbose bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8080"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.SessionDB = "session.db"
	c.BlockingRefresh = false
	c.Verbose = false
}

// Load builds a Config from defaults, the environment, an optional JSON file
// and the given command-line arguments (without the program name). Later
// sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, defaultEnvFile); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load applied to os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
