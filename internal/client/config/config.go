package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/policy"
	"github.com/go-playground/validator/v10"
)

const (
	TransportGRPC = "grpc"
	TransportHTTP = "http"
)

// Config holds runtime settings for the LockSafe CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - Transport: "grpc" or "http"; selects the remote client.
//   - HTTPBaseURL: base URL of the JSON API when Transport is "http".
//   - OnlineCheckInterval: how often the client probes server reachability;
//     zero disables the background probe.
//   - LocalDSN: SQLite database backing the local fallback vault.
//   - OTPValidity: lifetime of OTPs issued by the local fallback.
//   - Policy: master password rules for the local fallback.
type Config struct {
	ServerEndpointAddr  string        `validate:"required_if=Transport grpc"`
	Transport           string        `validate:"oneof=grpc http"`
	HTTPBaseURL         string        `validate:"omitempty,url"`
	OnlineCheckInterval time.Duration `validate:"gte=0"`
	LocalDSN            string        `validate:"required"`
	LogFormat           string        `validate:"oneof=text json zap"`
	LogLevel            string        `validate:"oneof=debug info warn error"`
	OTPValidity         time.Duration `validate:"gt=0"`
	Policy              policy.Rules
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Transport = TransportGRPC
	c.HTTPBaseURL = "http://127.0.0.1:8080"
	c.OnlineCheckInterval = 3 * time.Second
	c.LocalDSN = "sqlite://locksafe.db"
	c.LogFormat = "text"
	c.LogLevel = "warn"
	c.OTPValidity = 120 * time.Second
	c.Policy = policy.DefaultRules()
}

// Validate checks field combinations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
