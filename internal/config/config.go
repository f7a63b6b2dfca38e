package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	ServerPort    string
	WeatherAPIKey string
}

// Load reads configuration from the environment, with an optional .env file.
// An empty DATABASE_URL selects the in-memory appointment store.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		WeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
