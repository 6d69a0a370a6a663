package main

import (
	"context"

	"github.com/Panupong-xD/SodiumTracker/config"
	"github.com/Panupong-xD/SodiumTracker/storage"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Overwrite the food catalog with the preset list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		gw, err := openGateway(cfg)
		if err != nil {
			return err
		}
		ctx := context.Background()
		if err := storage.Migrate(ctx, gw); err != nil {
			return err
		}
		store := storage.NewStore(gw)
		if err := store.Initialize(ctx); err != nil {
			return err
		}
		return store.SeedFoodCatalog(ctx)
	},
}
