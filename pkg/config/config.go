package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Log      LogConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Env       string
	SecretKey string
}

type DatabaseConfig struct {
	Driver string // sqlite, postgres

	// sqlite
	Path string

	// postgres
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// CatalogConfig holds the tunable catalog limits.
type CatalogConfig struct {
	ItemsPerPage          int
	MaxGenresPerDish      int
	MaxIngredientsPerDish int
	MaxMemoLength         int
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	config := &Config{
		App: AppConfig{
			Name:      getEnv("APP_NAME", "Menu Catalog"),
			Port:      getEnv("APP_PORT", "8080"),
			Env:       getEnv("APP_ENV", "development"),
			SecretKey: getEnv("SECRET_KEY", "dev-secret-key-change-in-production"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DATABASE_PATH", "data/menudb.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "menu_catalog"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Catalog: CatalogConfig{
			ItemsPerPage:          getEnvInt("ITEMS_PER_PAGE", 10),
			MaxGenresPerDish:      getEnvInt("MAX_GENRES_PER_DISH", 2),
			MaxIngredientsPerDish: getEnvInt("MAX_INGREDIENTS_PER_DISH", 10),
			MaxMemoLength:         getEnvInt("MAX_MEMO_LENGTH", 500),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
