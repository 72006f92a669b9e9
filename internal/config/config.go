package config

import "os"

// Config holds the process settings. main loads .env first; everything
// here comes from the environment with dev defaults.
type Config struct {
	AppName        string
	Environment    string // dev | test | prod
	HTTPAddr       string
	DatabaseDriver string // sqlite | postgres
	DatabaseDSN    string
	APIKey         string
}

func Load() Config {
	return Config{
		AppName:        getenv("APP_NAME", "Accounting API"),
		Environment:    getenv("APP_ENV", "dev"),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		DatabaseDriver: getenv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    getenv("DATABASE_DSN", "dev.db"),
		APIKey:         getenv("API_KEY", "dev-secret-key"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
