// Command crowdfund runs the campaign ledger service and its maintenance
// tasks.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Configuration comes from the
// environment, see config.Config.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crowdfund",
		Short: "Crowdfunding campaign ledger",
		Long: `crowdfund keeps campaigns, the contributions made to them and the value
held in trust for each one until it is paid out to the organizer or
refunded to contributors.`,
		SilenceUsage: true,
	}
	cmd.Version = version

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

// loadConfig reads the environment and builds the logger described by it.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, newLogger(cfg.Log), nil
}

func newLogger(cfg configs.Logger) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
