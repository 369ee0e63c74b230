package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/dmitrijs2005/locksafe/internal/server"
	"github.com/dmitrijs2005/locksafe/internal/server/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "locksafe-server [command] [flags]",
	Short: "LockSafe backend server",
	Long: `Serves the LockSafe backend over gRPC and HTTP.

Flags:
  -c, -config string  config file (JSON or YAML)
  -a string           gRPC listen address
  -w string           HTTP listen address
  -d string           database DSN (postgres:// or sqlite://)
  -s string           grant signing secret
  -l string           log level`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               serve,
}

var serveCmd = &cobra.Command{
	Use:                "serve [flags]",
	Short:              "Run the gRPC and HTTP servers",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               serve,
}

var migrateCmd = &cobra.Command{
	Use:                "migrate [flags]",
	Short:              "Apply database migrations and exit",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(args)
		if err != nil {
			return err
		}
		defer syncLogger(logger)
		return server.Migrate(cmd.Context(), cfg, logger)
	},
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(args)
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	app, err := server.NewApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	return app.Run(cmd.Context())
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
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
