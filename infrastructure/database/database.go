package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"menu-catalog/domain/models"
)

type Config struct {
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

// NewDatabase opens the configured database. sqlite is the default; the
// parent directory of the database file is created if needed.
func NewDatabase(config Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch config.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	case "sqlite", "":
		if dir := filepath.Dir(config.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		db, err := gorm.Open(sqlite.Open(config.Path), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

func Migrate(db *gorm.DB) error {
	// Bind both associations to the explicit join models so association
	// writes and the migrated tables agree on column names.
	if err := db.SetupJoinTable(&models.Dish{}, "Genres", &models.DishGenreRelation{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Dish{}, "Ingredients", &models.DishIngredientRelation{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.IngredientCategory{},
		&models.DishGenre{},
		&models.Ingredient{},
		&models.Dish{},
		&models.DishGenreRelation{},
		&models.DishIngredientRelation{},
		&models.SeedState{},
	)
}
