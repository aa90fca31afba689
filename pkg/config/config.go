package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Env         string
	PostgresURL string
	JWTSecret   string
	JWTExpiry   time.Duration
}

func Load() *Config {
	expiryHours, err := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "72"))
	if err != nil || expiryHours <= 0 {
		expiryHours = 72
	}
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:   getEnv("JWT_SECRET", "supersecretjwtkey"),
		JWTExpiry:   time.Duration(expiryHours) * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
