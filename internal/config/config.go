package config

import (
	"os"
	"strings"
)

// Config carries the process configuration, read once at startup.
type Config struct {
	HTTPAddr     string
	StockFile    string
	KafkaBrokers []string
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development. KAFKA_BROKERS is optional; without it no
// events are published.
func Load() Config {
	cfg := Config{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		StockFile: getEnv("STOCK_FILE", "stock.csv"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
