package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type Telegram struct {
	BotToken string
	ChatID   string
	APIBase  string
	Timeout  time.Duration
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	PublicURL  string
}

type Session struct {
	Backend  string // "memory" або "postgres"
	TTL      time.Duration
	Secure   bool
	CookieID string
}

type Config struct {
	ServerPort    int
	StorageDriver string // "memory" або "postgres"
	DB            DB
	Telegram      Telegram
	MinIO         MinIO
	Session       Session
	MaxUploadSize int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "kubenko"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadTelegram() Telegram {
	return Telegram{
		BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		APIBase:  getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
		Timeout:  parseDuration(getEnv("TELEGRAM_TIMEOUT", "30s"), 30*time.Second),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "portfolio"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", ""),
	}
}

func LoadSession() Session {
	return Session{
		Backend:  getEnv("SESSION_STORE", ""),
		TTL:      parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),
		Secure:   getEnvBool("SESSION_SECURE", false),
		CookieID: getEnv("SESSION_COOKIE_NAME", "session_id"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env файл не знайдено, використовуються змінні оточення")
	}

	cfg := &Config{
		ServerPort:    getEnvAsInt("SERVER_PORT", 5000),
		StorageDriver: getEnv("STORAGE_DRIVER", ""),
		DB:            LoadDB(),
		Telegram:      LoadTelegram(),
		MinIO:         LoadMinIO(),
		Session:       LoadSession(),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
	}

	// якщо драйвер не заданий явно - postgres при наявності DATABASE_URL, інакше пам'ять
	if cfg.StorageDriver == "" {
		if os.Getenv("DATABASE_URL") != "" {
			cfg.StorageDriver = "postgres"
		} else {
			cfg.StorageDriver = "memory"
		}
	}

	if cfg.Session.Backend == "" {
		cfg.Session.Backend = cfg.StorageDriver
	}

	return cfg
}
