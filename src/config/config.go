package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	AppName        string
	Environment    string
	Port           string
	AllowedOrigins string
	LogLevel       string

	StoreDriver string
	MongoURI    string
	MongoDB     string
	SQLitePath  string
	RedisURI    string

	JWTSecret         string
	JWTTTL            time.Duration
	AdminEmail        string
	AdminPassword     string
	AdminAuthRequired bool
	LoginMaxAttempts  int
	LoginCooldown     time.Duration

	SMTP        SMTPConfig
	NotifyEmail string
	BaseURL     string
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return Config{
		AppName:        v.GetString("APP_NAME"),
		Environment:    v.GetString("APP_ENV"),
		Port:           v.GetString("APP_PORT"),
		AllowedOrigins: v.GetString("ALLOWED_ORIGINS"),
		LogLevel:       v.GetString("LOG_LEVEL"),

		StoreDriver: normalizeDriver(v.GetString("STORE_DRIVER")),
		MongoURI:    strings.TrimSpace(v.GetString("MONGO_URI")),
		MongoDB:     v.GetString("MONGO_DB"),
		SQLitePath:  v.GetString("SQLITE_PATH"),
		RedisURI:    strings.TrimSpace(v.GetString("REDIS_URI")),

		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTTTL:            v.GetDuration("JWT_TTL"),
		AdminEmail:        strings.ToLower(strings.TrimSpace(v.GetString("ADMIN_EMAIL"))),
		AdminPassword:     v.GetString("ADMIN_PASSWORD"),
		AdminAuthRequired: v.GetBool("ADMIN_AUTH_REQUIRED"),
		LoginMaxAttempts:  v.GetInt("LOGIN_MAX_ATTEMPTS"),
		LoginCooldown:     v.GetDuration("LOGIN_COOLDOWN"),

		SMTP: SMTPConfig{
			Host: v.GetString("SMTP_HOST"),
			Port: v.GetInt("SMTP_PORT"),
			User: v.GetString("SMTP_USER"),
			Pass: v.GetString("SMTP_PASS"),
			From: v.GetString("SMTP_FROM"),
		},
		NotifyEmail: v.GetString("NOTIFY_EMAIL"),
		BaseURL:     strings.TrimRight(v.GetString("APP_BASE_URL"), "/"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "quicktech")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8888")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("MONGO_DB", "QuickTechDB")
	v.SetDefault("SQLITE_PATH", "quicktech.db")
	v.SetDefault("JWT_SECRET", "your_secret_key")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("ADMIN_AUTH_REQUIRED", false)
	v.SetDefault("LOGIN_MAX_ATTEMPTS", 5)
	v.SetDefault("LOGIN_COOLDOWN", "15m")
	v.SetDefault("APP_BASE_URL", "http://localhost:5173")
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StoreMongo:
		return StoreMongo
	case StoreSQLite:
		return StoreSQLite
	default:
		return StoreMemory
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// NotificationsEnabled reports whether a Redis broker is configured for asynq.
func (c Config) NotificationsEnabled() bool {
	return c.RedisURI != ""
}

// IsProduction reports APP_ENV=production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
