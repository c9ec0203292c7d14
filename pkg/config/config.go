package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultScanRateLimit is the fallback per-IP limit for the scan
// endpoint, in ulule/limiter formatted notation.
const DefaultScanRateLimit = "60-M"

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// NATSURL enables live bus-position publishing when non-empty.
	NATSURL string

	// SimTickInterval drives the cosmetic bus-position animation.
	SimTickInterval time.Duration

	// ScanRateLimit is the per-IP limit for the scan endpoint
	// (ulule/limiter format, e.g. "60-M").
	ScanRateLimit string

	// CORSAllowOrigins is the list of allowed SPA origins.
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and a
// .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("NATS_URL", "")
	viper.SetDefault("SIM_TICK_INTERVAL", "3s")
	viper.SetDefault("SCAN_RATE_LIMIT", DefaultScanRateLimit)
	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Wallet state will be held in memory only.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	simTickStr := viper.GetString("SIM_TICK_INTERVAL")
	simTick, err := time.ParseDuration(simTickStr)
	if err != nil || simTick <= 0 {
		simTick = 3 * time.Second
		if simTickStr != "" {
			log.Printf("Warning: Invalid value for SIM_TICK_INTERVAL ('%s'). Defaulting to %s.\n", simTickStr, simTick)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.NATSURL = viper.GetString("NATS_URL")
	cfg.SimTickInterval = simTick
	cfg.ScanRateLimit = viper.GetString("SCAN_RATE_LIMIT")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	return cfg, nil
}
