package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string

	ShopifyDomain     string
	ShopifyToken      string
	ShopifyAPIVersion string

	AdminPasswordHash string
	JWTSecret         string

	ResendAPIKey string
	EmailFrom    string

	CORSOrigin string
}

// LoadConfig reads .env (if present) and the process environment.
// Database settings are required; Shopify credentials are validated
// lazily by the shopify client so pages that never touch commerce
// still come up.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort: getEnv("APP_PORT", "8080"),
		AppEnv:  os.Getenv("APP_ENV"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		ShopifyDomain:     os.Getenv("SHOPIFY_STORE_DOMAIN"),
		ShopifyToken:      os.Getenv("SHOPIFY_STOREFRONT_ACCESS_TOKEN"),
		ShopifyAPIVersion: getEnv("SHOPIFY_API_VERSION", "2025-01"),

		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    getEnv("EMAIL_FROM", "NOIR <noreply@noir.example>"),

		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
