package main

import (
	"fmt"

	cfgpkg "github.com/0xPexy/sentra-gas-station/internal/config"
	"github.com/0xPexy/sentra-gas-station/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the sqlite schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cfgpkg.Load()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cfg.Database.Driver != cfgpkg.DriverSQLite {
				return fmt.Errorf("migrate needs STORE_DRIVER=%s, got %q", cfgpkg.DriverSQLite, cfg.Database.Driver)
			}
			db, err := store.OpenSQLite(cfg.Database.SQLiteDSN, log)
			if err != nil {
				return err
			}
			if err := store.AutoMigrate(db); err != nil {
				return err
			}
			log.Info("schema migrated", zap.String("dsn", cfg.Database.SQLiteDSN))
			return nil
		},
	}
}
