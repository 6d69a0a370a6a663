package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage drivers selectable via STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Addr          string
	StorageDriver string
	SQLitePath    string
	PostgresDSN   string

	JWTSecret   string
	PairingCode string

	S3Bucket      string
	S3Region      string
	CloudFrontURL string
}

// Load reads .env (if present) and the environment. SQLite is the default
// driver: the deployment target is a single user on a single device.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:          getenv("ADDR", ":8080"),
		StorageDriver: getenv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:    getenv("SQLITE_PATH", "sodiumtracker.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		PairingCode:   os.Getenv("PAIRING_CODE"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      getenv("S3_REGION", os.Getenv("AWS_REGION")),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
	}

	if cfg.StorageDriver == DriverPostgres {
		cfg.PostgresDSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
