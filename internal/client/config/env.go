package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile = ".env"

	envAPIURL    = "GOPHFILES_API_URL"
	envSessionDB = "GOPHFILES_SESSION_DB"
)

// parseEnv overlays cfg with values from envFile (if it exists) and from the
// process environment. Process variables win over the file, matching the
// behaviour of godotenv.Load.
func parseEnv(cfg *Config, envFile string) error {
	vars := make(map[string]string)

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, key := range []string{envAPIURL, envSessionDB} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	if v := vars[envAPIURL]; v != "" {
		cfg.APIURL = strings.TrimRight(v, "/")
	}
	if v := vars[envSessionDB]; v != "" {
		cfg.SessionDB = v
	}
	return nil
}
