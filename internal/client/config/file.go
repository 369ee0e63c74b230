package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/locksafe/internal/flagx"
	"github.com/dmitrijs2005/locksafe/internal/policy"
	"github.com/dmitrijs2005/locksafe/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling. Pointer
// fields distinguish "absent" from "zero", so a file only overrides what it
// names. Policy is decoded over the current rules.
type FileConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	Transport           *string         `json:"transport" yaml:"transport"`
	HTTPBaseURL         *string         `json:"http_base_url" yaml:"http_base_url"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	LocalDSN            *string         `json:"local_dsn" yaml:"local_dsn"`
	LogFormat           *string         `json:"log_format" yaml:"log_format"`
	LogLevel            *string         `json:"log_level" yaml:"log_level"`
	OTPValidity         *timex.Duration `json:"otp_validity" yaml:"otp_validity"`
	Policy              *policy.Rules   `json:"policy" yaml:"policy"`
}

// parseFile overlays cfg with the file named by -c/-config, if any. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	rules := cfg.Policy
	fc := FileConfig{Policy: &rules}
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
	setIf(&cfg.ServerEndpointAddr, fc.ServerEndpointAddr)
	setIf(&cfg.Transport, fc.Transport)
	setIf(&cfg.HTTPBaseURL, fc.HTTPBaseURL)
	setIf(&cfg.LocalDSN, fc.LocalDSN)
	setIf(&cfg.LogFormat, fc.LogFormat)
	setIf(&cfg.LogLevel, fc.LogLevel)
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.OTPValidity != nil {
		cfg.OTPValidity = fc.OTPValidity.Duration
	}
	setIf(&cfg.Policy, fc.Policy)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
