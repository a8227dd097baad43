package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vasiliy-maslov/portfolio-api/internal/config"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, db.Up)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, db.Down)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE:  runMigrateVersion,
	})

	return cmd
}

func loadMigrateConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	return cfg, nil
}

func runMigrate(cmd *cobra.Command, dir db.Direction) error {
	cfg, err := loadMigrateConfig()
	if err != nil {
		return err
	}

	if err := db.Migrate(cfg.Postgres.URI, dir); err != nil {
		return err
	}
	cmd.Printf("migrate %s: done\n", dir)
	return nil
}

func runMigrateVersion(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMigrateConfig()
	if err != nil {
		return err
	}

	version, dirty, ok, err := db.MigrationVersion(cfg.Postgres.URI)
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("no migrations applied")
		return nil
	}
	cmd.Printf("version %d (dirty: %t)\n", version, dirty)
	return nil
}
