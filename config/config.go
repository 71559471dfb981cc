package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Admin auth - bcrypt hash of the shared admin password
	AdminPasswordHash string

	// Object storage (S3 compatible)
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageUseSSL     bool
	StoragePublicURL  string
	ListingsBucket    string
	TestimonialBucket string

	// Redis page cache (optional)
	RedisAddr string

	// Gemini price suggestion
	GeminiAPIKey string
	GeminiModel  string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	AdminEmail   string
}

func Load() *Config {
	// .env is optional, real env vars take precedence
	_ = godotenv.Load()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	useSSL, _ := strconv.ParseBool(getEnv("STORAGE_USE_SSL", "false"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/motomart?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		// Default is bcrypt("admin123"), development only
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),

		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey:  getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageUseSSL:     useSSL,
		StoragePublicURL:  getEnv("STORAGE_PUBLIC_URL", "http://localhost:9000"),
		ListingsBucket:    getEnv("LISTINGS_BUCKET", "listings-images"),
		TestimonialBucket: getEnv("TESTIMONIALS_BUCKET", "testimonials-images"),

		RedisAddr: getEnv("REDIS_ADDR", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@motomart.com"),
		FromName:     getEnv("FROM_NAME", "MotoMart"),
		AdminEmail:   getEnv("ADMIN_EMAIL", "admin@motomart.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
