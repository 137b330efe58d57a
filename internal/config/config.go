package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Sheets   SheetsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// SheetsConfig holds the remote source identifiers and sync tuning.
type SheetsConfig struct {
	MembersID    string
	RecordsID    string
	ExportURL    string        // template with one %s for the source ID
	Proxies      []string      // fallback templates with one %s for the url-encoded target
	FetchTimeout time.Duration // per attempt
	SyncDeadline time.Duration // whole network path
	SyncInterval time.Duration
	AutoSync     bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "heim_dashboard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvSlice("CORS_ORIGINS", "http://localhost:3000"),
	}

	// Sheets configuration
	fetchTimeout, err := getEnvDuration("SHEETS_FETCH_TIMEOUT", "12s")
	if err != nil {
		return nil, err
	}
	syncDeadline, err := getEnvDuration("SHEETS_SYNC_DEADLINE", "45s")
	if err != nil {
		return nil, err
	}
	syncInterval, err := getEnvDuration("SHEETS_SYNC_INTERVAL", "30m")
	if err != nil {
		return nil, err
	}

	config.Sheets = SheetsConfig{
		MembersID:    getEnv("SHEETS_MEMBERS_ID", ""),
		RecordsID:    getEnv("SHEETS_RECORDS_ID", ""),
		ExportURL:    getEnv("SHEETS_EXPORT_URL", "https://docs.google.com/spreadsheets/d/%s/export?format=xlsx"),
		Proxies:      getEnvSlice("SHEETS_PROXIES", "https://corsproxy.io/?%s,https://api.allorigins.win/raw?url=%s"),
		FetchTimeout: fetchTimeout,
		SyncDeadline: syncDeadline,
		SyncInterval: syncInterval,
		AutoSync:     getEnv("SHEETS_AUTO_SYNC", "true") == "true",
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Sheets.MembersID == "" {
		return fmt.Errorf("SHEETS_MEMBERS_ID is required")
	}
	if c.Sheets.RecordsID == "" {
		return fmt.Errorf("SHEETS_RECORDS_ID is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func getEnvDuration(key, fallback string) (time.Duration, error) {
	value := getEnv(key, fallback)
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
