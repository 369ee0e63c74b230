package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/locksafe/internal/client/cli"
	"github.com/dmitrijs2005/locksafe/internal/client/config"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/spf13/cobra"
)

// Flags are parsed by the config package so file, env and flag layering
// stays in one place.
var rootCmd = &cobra.Command{
	Use:   "locksafe [command] [flags]",
	Short: "LockSafe password manager client",
	Long: `LockSafe stores account secrets behind a master password.

Run without a command to start the interactive shell. The client talks to
the LockSafe server and falls back to a local vault when it is unreachable.

Flags:
  -c, -config string  config file (JSON or YAML)
  -a string           gRPC server address
  -t string           transport (grpc|http)
  -u string           HTTP API base URL
  -i int              online check interval in seconds, 0 disables it
  -d string           local fallback database
  -l string           log level`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(args)
		if err != nil {
			return err
		}
		defer syncLogger(logger)

		app, err := cli.NewApp(cmd.Context(), cfg, logger, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context())
	},
}

var probeCmd = &cobra.Command{
	Use:                "probe [flags]",
	Short:              "Check whether the configured server is reachable",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(args)
		if err != nil {
			return err
		}
		defer syncLogger(logger)
		return cli.CheckServer(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func setup(args []string) (*config.Config, logging.Logger, error) {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func syncLogger(l logging.Logger) {
	if s, ok := l.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

func main() {
	rootCmd.AddCommand(probeCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
