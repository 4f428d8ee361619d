package config

import (
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	AppEnv string `default:"development"`
	Port   string `default:"8082"`

	DatabaseURL string
	DBHost      string `default:"localhost"`
	DBPort      string `default:"5432"`
	DBUser      string `default:"postgres"`
	DBPassword  string `default:"postgres"`
	DBName      string `default:"abc_retail"`
	DBSSLMode   string `default:"disable"`

	RedisURL      string
	RedisAddr     string `default:"localhost:6379"`
	RedisPassword string

	SessionSecret      string        `default:"abc-retail-session-secret"`
	SessionIdleTimeout time.Duration `default:"30m"`

	JWTSecret string        `default:"secret"`
	JWTExpiry time.Duration `default:"24h"`

	OrderQueue             string        `default:"ordersqueue"`
	FunctionQueue          string        `default:"messages"`
	QueueVisibilityTimeout time.Duration `default:"30s"`

	CloudinaryURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	SFTPAddr      string
	SFTPUser      string
	SFTPPassword  string
	SFTPHostKey   string
	SFTPRoot      string
	FileShareRoot string `default:"./storage"`

	SMTPHost string
	SMTPPort int `default:"587"`
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	FunctionsKey  string
	MaxUploadSize int64 `default:"5242880"`
	OriginURL     string

	LogMode string `default:"development"`
	LogFile string
}

var AppConfig *Config

func LoadConfig() *Config {
	if os.Getenv("VERCEL") == "" {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		zap.S().Fatalf("failed to apply config defaults: %v", err)
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.Port = getEnv("APP_PORT", getEnv("PORT", cfg.Port))

	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.DBSSLMode = getEnv("DB_SSLMODE", cfg.DBSSLMode)

	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)

	cfg.SessionSecret = getEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.SessionIdleTimeout = getDuration("SESSION_IDLE_TIMEOUT", cfg.SessionIdleTimeout)

	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTExpiry = getDuration("JWT_EXPIRY", cfg.JWTExpiry)

	cfg.OrderQueue = getEnv("ORDER_QUEUE", cfg.OrderQueue)
	cfg.FunctionQueue = getEnv("FUNCTION_QUEUE", cfg.FunctionQueue)
	cfg.QueueVisibilityTimeout = getDuration("QUEUE_VISIBILITY_TIMEOUT", cfg.QueueVisibilityTimeout)

	cfg.CloudinaryURL = getEnv("CLOUDINARY_URL", cfg.CloudinaryURL)
	cfg.CloudinaryCloudName = getEnv("CLOUDINARY_CLOUD_NAME", cfg.CloudinaryCloudName)
	cfg.CloudinaryAPIKey = getEnv("CLOUDINARY_API_KEY", cfg.CloudinaryAPIKey)
	cfg.CloudinaryAPISecret = getEnv("CLOUDINARY_API_SECRET", cfg.CloudinaryAPISecret)

	cfg.SFTPAddr = getEnv("SFTP_ADDR", cfg.SFTPAddr)
	cfg.SFTPUser = getEnv("SFTP_USER", cfg.SFTPUser)
	cfg.SFTPPassword = getEnv("SFTP_PASSWORD", cfg.SFTPPassword)
	cfg.SFTPHostKey = getEnv("SFTP_HOST_KEY", cfg.SFTPHostKey)
	cfg.SFTPRoot = getEnv("SFTP_ROOT", cfg.SFTPRoot)
	cfg.FileShareRoot = getEnv("FILE_SHARE_ROOT", cfg.FileShareRoot)

	cfg.SMTPHost = getEnv("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = getInt("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUser = getEnv("SMTP_USER", cfg.SMTPUser)
	cfg.SMTPPass = getEnv("SMTP_PASS", cfg.SMTPPass)
	cfg.SMTPFrom = getEnv("SMTP_FROM", cfg.SMTPFrom)

	cfg.FunctionsKey = getEnv("FUNCTIONS_KEY", cfg.FunctionsKey)
	cfg.MaxUploadSize = int64(getInt("MAX_UPLOAD_SIZE", int(cfg.MaxUploadSize)))
	cfg.OriginURL = getEnv("ORIGIN_URL", cfg.OriginURL)

	cfg.LogMode = getEnv("LOG_MODE", cfg.LogMode)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	AppConfig = cfg
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
