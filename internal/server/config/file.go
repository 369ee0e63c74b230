package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/locksafe/internal/flagx"
	"github.com/dmitrijs2005/locksafe/internal/otp"
	"github.com/dmitrijs2005/locksafe/internal/policy"
	"github.com/dmitrijs2005/locksafe/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of Config. Absent keys leave the current
// value alone; smtp and policy are decoded over the current values.
type FileConfig struct {
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrHTTP *string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	DatabaseDSN      *string         `json:"database_dsn" yaml:"database_dsn"`
	GrantSecret      *string         `json:"grant_secret" yaml:"grant_secret"`
	GrantTTL         *timex.Duration `json:"grant_ttl" yaml:"grant_ttl"`
	SMTP             *otp.SMTPConfig `json:"smtp" yaml:"smtp"`
	OTP              *struct {
		Validity  *timex.Duration `json:"validity" yaml:"validity"`
		Digits    *int            `json:"digits" yaml:"digits"`
		RateLimit *float64        `json:"rate_limit" yaml:"rate_limit"`
		RateBurst *int            `json:"rate_burst" yaml:"rate_burst"`
	} `json:"otp" yaml:"otp"`
	LogFormat *string       `json:"log_format" yaml:"log_format"`
	LogLevel  *string       `json:"log_level" yaml:"log_level"`
	Policy    *policy.Rules `json:"policy" yaml:"policy"`
}

func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	smtpCfg, rules := cfg.SMTP, cfg.Policy
	fc := FileConfig{SMTP: &smtpCfg, Policy: &rules}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setIf(&cfg.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setIf(&cfg.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setIf(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setIf(&cfg.GrantSecret, fc.GrantSecret)
	setIf(&cfg.SMTP, fc.SMTP)
	setIf(&cfg.LogFormat, fc.LogFormat)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.Policy, fc.Policy)
	if fc.GrantTTL != nil {
		cfg.GrantTTL = fc.GrantTTL.Duration
	}
	if o := fc.OTP; o != nil {
		if o.Validity != nil {
			cfg.OTPValidity = o.Validity.Duration
		}
		setIf(&cfg.OTPDigits, o.Digits)
		setIf(&cfg.OTPRateLimit, o.RateLimit)
		setIf(&cfg.OTPRateBurst, o.RateBurst)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
