package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "LOCKSAFE_"

// dotenvFile is loaded into the process environment if it exists. Variables
// already set win over the file.
var dotenvFile = ".env"

// lookupEnv is a test seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

// parseEnv overlays cfg with LOCKSAFE_* variables:
//
//	LOCKSAFE_SERVER_ADDR              gRPC address
//	LOCKSAFE_TRANSPORT                grpc | http
//	LOCKSAFE_HTTP_URL                 JSON API base URL
//	LOCKSAFE_ONLINE_CHECK_INTERVAL    probe interval, e.g. "5s"
//	LOCKSAFE_LOCAL_DSN                local fallback database
//	LOCKSAFE_LOG_FORMAT / _LOG_LEVEL  logging
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenvFile, err)
	}

	str := func(name string, dst *string) {
		if v, ok := lookupEnv(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	str("SERVER_ADDR", &cfg.ServerEndpointAddr)
	str("TRANSPORT", &cfg.Transport)
	str("HTTP_URL", &cfg.HTTPBaseURL)
	str("LOCAL_DSN", &cfg.LocalDSN)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("LOG_LEVEL", &cfg.LogLevel)

	if v, ok := lookupEnv(envPrefix + "ONLINE_CHECK_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sONLINE_CHECK_INTERVAL: %w", envPrefix, err)
		}
		cfg.OnlineCheckInterval = d
	}
	return nil
}
