package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration

	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	FromName  string
	FromEmail string

	UploadsDir    string
	StaticURLBase string

	OutboxInterval time.Duration
	FeedInterval   time.Duration
}

// Load reads configuration from the environment. A local .env file is
// applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "hotelbooking.db"),
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      getEnvDuration("JWT_TTL", 24*time.Hour),

		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		SMTPUser:  os.Getenv("SMTP_USERNAME"),
		SMTPPass:  os.Getenv("SMTP_PASSWORD"),
		FromName:  getEnv("EMAIL_FROM_NAME", "Hotel Booking"),
		FromEmail: os.Getenv("EMAIL_FROM"),

		UploadsDir:    getEnv("UPLOADS_DIR", "./uploads"),
		StaticURLBase: getEnv("STATIC_URL_BASE", "/static/uploads"),

		OutboxInterval: getEnvDuration("OUTBOX_INTERVAL", 15*time.Second),
		FeedInterval:   getEnvDuration("FEED_INTERVAL", 60*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
