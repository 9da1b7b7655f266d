package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at boot
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Port        string
	LogLevel    string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// DSN renders the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	EventsKey string
}

type JWTConfig struct {
	SecretKey      string
	Issuer         string
	AccessTokenTTL time.Duration
}

// IsProduction reports whether the server runs with production settings
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

// Load reads the environment, preloading a .env file when one exists
func Load() Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "SkillGlide Jobs API"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Port:        getEnv("PORT", "8080"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173, http://127.0.0.1:3000"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     os.Getenv("DB_PASS"),
			Name:         getEnv("DB_NAME", "jobboard"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  5 * time.Minute,
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  os.Getenv("REDIS_PASS"),
			DB:        getEnvInt("REDIS_DB", 0),
			EventsKey: getEnv("APPLICATION_EVENTS_KEY", "events:applications"),
		},
		JWT: JWTConfig{
			SecretKey:      os.Getenv("JWT_SECRET"),
			Issuer:         getEnv("JWT_ISSUER", "skillglide"),
			AccessTokenTTL: time.Duration(getEnvInt("JWT_TTL_MINUTES", 60)) * time.Minute,
		},
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
