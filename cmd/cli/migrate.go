package cli

import (
	"context"

	"turfbook/internal/infra/db"
	"turfbook/internal/pkg/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *db.Migrator) error { return m.Up(cmd.Context()) })
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *db.Migrator) error { return m.Down(cmd.Context()) })
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the status of every migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *db.Migrator) error { return m.Status(cmd.Context()) })
		},
	})

	return cmd
}

func withMigrator(_ context.Context, fn func(m *db.Migrator) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	m, err := db.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}
