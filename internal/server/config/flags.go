package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/locksafe/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address
//	-w string   HTTP API bind address ("" disables it)
//	-d string   database DSN
//	-s string   OTP grant secret
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-d", "-s", "-l"})

	fs := flag.NewFlagSet("locksafe-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&cfg.EndpointAddrHTTP, "w", cfg.EndpointAddrHTTP, "HTTP API address and port")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.GrantSecret, "s", cfg.GrantSecret, "OTP grant secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
