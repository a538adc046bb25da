package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Session  SessionConfig
	DB       DBConfig
	Redis    RedisConfig
	Telegram TelegramConfig
}

type HTTPConfig struct {
	Port           int
	AllowedOrigins []string
}

type SessionConfig struct {
	Store string // "memory", "postgres" or "redis"
	TTL   time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type TelegramConfig struct {
	Token string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	ttlMinutes, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}

	store := getEnv("SESSION_STORE", "memory")
	switch store {
	case "memory", "postgres", "redis":
	default:
		return nil, fmt.Errorf("invalid SESSION_STORE: must be 'memory', 'postgres' or 'redis'")
	}

	return &Config{
		HTTP: HTTPConfig{
			Port:           port,
			AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		},
		Session: SessionConfig{
			Store: store,
			TTL:   time.Duration(ttlMinutes) * time.Minute,
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "spicegarden"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TELEGRAM_TOKEN", ""),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
