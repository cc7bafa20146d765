package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go-personnel/internal/shared/connection"
)

const (
	AttachmentBackendLocal = "local"
	AttachmentBackendS3    = "s3"
)

type Config struct {
	Port   string
	AppEnv string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBRetries   int

	UploadsDir        string
	AttachmentBackend string
	S3Bucket          string
	S3Endpoint        string

	RedisAddr   string
	KafkaBroker string
	CORSOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	PollInterval time.Duration
}

// LoadConfig reads the environment. Call godotenv.Load first to pick up a
// .env file.
func LoadConfig() Config {
	return Config{
		Port:   env("PORT", "3000"),
		AppEnv: env("APP_ENV", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      env("DB_HOST", "localhost"),
		DBPort:      env("DB_PORT", "5432"),
		DBUser:      env("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      env("DB_NAME", "personal_policial"),
		DBSSLMode:   env("DB_SSLMODE", "disable"),
		DBRetries:   envInt("DB_MAX_RETRIES", 5),

		UploadsDir:        env("UPLOADS_DIR", "./uploads"),
		AttachmentBackend: strings.ToLower(env("ATTACHMENT_BACKEND", AttachmentBackendLocal)),
		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),

		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		CORSOrigins: splitList(env("CORS_ALLOW_ORIGINS", "*")),

		ReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  envDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		PollInterval: envDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}
}

// DSN prefers DATABASE_URL over the discrete DB_* settings.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return connection.PostgresDSN(c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
