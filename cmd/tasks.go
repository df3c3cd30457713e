package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"crowdfund/db/migrations"
	"crowdfund/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully", slog.Int("version", migrations.Version))
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fund demo accounts and open a demo campaign",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.Storage.Memory() {
				return errors.New("seed needs a persistent storage driver, use serve --seed with memory storage")
			}
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer a.close()

			id, err := db.Seed(cmd.Context(), a.svc)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo data seeded", slog.Int64("campaign_id", id))
			return nil
		},
	}
}
