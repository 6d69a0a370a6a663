package main

import (
	"context"

	"github.com/Panupong-xD/SodiumTracker/config"
	"github.com/Panupong-xD/SodiumTracker/routes"
	"github.com/Panupong-xD/SodiumTracker/services"
	"github.com/Panupong-xD/SodiumTracker/storage"
	"github.com/Panupong-xD/SodiumTracker/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		log, err := utils.NewLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		gw, err := openGateway(cfg)
		if err != nil {
			log.Error("cannot open storage", zap.Error(err))
			return err
		}

		ctx := context.Background()
		if err := storage.Migrate(ctx, gw); err != nil {
			log.Error("storage migration failed", zap.Error(err))
			return err
		}
		store := storage.NewStore(gw)
		if err := store.Initialize(ctx); err != nil {
			log.Error("storage initialization failed", zap.Error(err))
			return err
		}

		secret := []byte(cfg.JWTSecret)
		if len(secret) == 0 {
			// Ephemeral secret: paired sessions won't survive a restart.
			secret = []byte(utils.GenerateRandomToken(48))
			log.Warn("JWT_SECRET not set, using an ephemeral secret")
		}
		pairingCode := cfg.PairingCode
		if pairingCode == "" {
			pairingCode = utils.GenerateRandomToken(8)
			log.Info("generated pairing code", zap.String("code", pairingCode))
		}

		var uploader *utils.ImageUploader
		if cfg.S3Bucket != "" {
			uploader, err = utils.NewImageUploader(ctx, cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontURL)
			if err != nil {
				log.Error("cannot init image uploader", zap.Error(err))
				return err
			}
		}

		r := routes.SetupRouter(routes.RouterDeps{
			Store:       store,
			Hub:         services.NewRealtimeHub(),
			Log:         log,
			JWTSecret:   secret,
			PairingCode: pairingCode,
			Uploader:    uploader,
		})

		log.Info("starting server", zap.String("addr", cfg.Addr), zap.String("storage", cfg.StorageDriver))
		return r.Run(cfg.Addr)
	},
}
