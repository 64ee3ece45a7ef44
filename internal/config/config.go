package config

import (
	"os"
	"time"
)

// Catalog / registrar / cart store modes. "sample" and "memory" keep
// everything in-process; "remote" and "redis" bind to external services.
const (
	ModeRemote = "remote"
	ModeSample = "sample"
	ModeMemory = "memory"
	ModeRedis  = "redis"
)

type Config struct {
	Port string
	Env  string

	JWTSecret string

	// Base URL of the upstream Florista API, e.g. http://localhost:5557.
	UpstreamBaseURL string

	CatalogMode   string // remote | sample
	RegistrarMode string // remote | memory
	CartStoreMode string // memory | redis

	RedisAddr   string
	KafkaBroker string

	SessionTTL time.Duration
}

// Load builds the config from environment variables so main stays lean.
// Defaults favour a fully in-process dev setup with no external services.
func Load() Config {
	return Config{
		Port:            getenv("PORT", "3000"),
		Env:             getenv("APP_ENV", "development"),
		JWTSecret:       getenv("JWT_SECRET", "dev-secret-change-in-production"),
		UpstreamBaseURL: getenv("UPSTREAM_BASE_URL", "http://localhost:5557"),
		CatalogMode:     getenv("CATALOG_MODE", ModeSample),
		RegistrarMode:   getenv("REGISTRAR_MODE", ModeMemory),
		CartStoreMode:   getenv("CART_STORE", ModeMemory),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		SessionTTL:      24 * time.Hour,
	}
}

func (c Config) IsProd() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
