package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend gRPC server
//	-t string   transport: grpc or http
//	-u string   base URL of the HTTP API
//	-i int      online check interval in seconds, 0 disables it
//	-d string   local fallback database DSN
//	-l string   log level
//
// Only these flags are taken from args, so other layers can share them.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-u", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("locksafe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.Transport, "t", cfg.Transport, "transport (grpc|http)")
	fs.StringVar(&cfg.HTTPBaseURL, "u", cfg.HTTPBaseURL, "base URL of the HTTP API")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LocalDSN, "d", cfg.LocalDSN, "local fallback database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["i"] {
		cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	}
	return nil
}
