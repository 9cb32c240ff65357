package main

import (
	"errors"

	"spelling_trainer/internal/config"
	"spelling_trainer/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations (PostgreSQL only)",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := migrationURL()
			if err != nil {
				return err
			}
			return repository.MigrateUp(url, setupLogger(config.Cfg.Log))
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := migrationURL()
			if err != nil {
				return err
			}
			return repository.MigrateDown(url, steps, setupLogger(config.Cfg.Log))
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

// migrationURL は SQLite では migrate を使わず AutoMigrate に任せるため、postgres 以外を拒否します
func migrationURL() (string, error) {
	db := config.Cfg.Database
	if db.Driver != "" && db.Driver != "postgres" {
		return "", errors.New("migrate supports only the postgres driver; use database.auto_migrate for sqlite")
	}
	if db.URL == "" {
		return "", errors.New("database.url (DATABASE_URL) must be set")
	}
	return db.URL, nil
}
