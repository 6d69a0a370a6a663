package main

import (
	"fmt"

	"github.com/Panupong-xD/SodiumTracker/config"
	"github.com/Panupong-xD/SodiumTracker/storage"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sodiumd",
	Short: "Sodium intake tracker backend for CKD patients",
	Long: `sodiumd serves the sodium-tracking API: personal sodium budget
calculation, food catalog, consumption log and dashboard aggregation.`,
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd)
}

// openGateway builds the configured storage gateway.
func openGateway(cfg *config.Config) (storage.Gateway, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return storage.OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		return storage.NewPostgres(cfg.PostgresDSN)
	case config.DriverMemory:
		return storage.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
