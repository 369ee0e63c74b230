package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "LOCKSAFE_"

var dotenvFile = ".env"

// lookupEnv is a test seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

// parseEnv overlays cfg with LOCKSAFE_* variables, loading .env first.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenvFile, err)
	}

	get := func(name string) (string, bool) {
		v, ok := lookupEnv(envPrefix + name)
		return v, ok && v != ""
	}
	str := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) error {
		v, ok := get(name)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
		}
		*dst = d
		return nil
	}

	str("GRPC_ADDR", &cfg.EndpointAddrGRPC)
	str("HTTP_ADDR", &cfg.EndpointAddrHTTP)
	str("DATABASE_DSN", &cfg.DatabaseDSN)
	str("GRANT_SECRET", &cfg.GrantSecret)
	str("SMTP_HOST", &cfg.SMTP.Host)
	str("SMTP_USERNAME", &cfg.SMTP.Username)
	str("SMTP_PASSWORD", &cfg.SMTP.Password)
	str("SMTP_FROM", &cfg.SMTP.From)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("LOG_LEVEL", &cfg.LogLevel)

	if v, ok := get("SMTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sSMTP_PORT: %w", envPrefix, err)
		}
		cfg.SMTP.Port = port
	}
	if err := dur("GRANT_TTL", &cfg.GrantTTL); err != nil {
		return err
	}
	return dur("OTP_VALIDITY", &cfg.OTPValidity)
}
