// Package config loads runtime configuration for the gophfiles CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and the process environment,
//     the latter winning (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the file-storage API
//	-i int      online status check interval (seconds)
//	-t int      per-request timeout (seconds)
//	-d string   path of the local session database
//	-v          verbose (debug) logging
//
// Environment
//
//	GOPHFILES_API_URL     base URL of the file-storage API
//	GOPHFILES_SESSION_DB  path of the local session database
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:8080",
//	  "online_check_interval": "3s",
//	  "request_timeout": "30s",
//	  "session_db": "session.db",
//	  "blocking_refresh": false
//	}
package config
