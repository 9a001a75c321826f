package di

import (
	"context"

	"gorm.io/gorm"

	"menu-catalog/application/serviceimpl"
	"menu-catalog/domain/repositories"
	"menu-catalog/domain/services"
	"menu-catalog/infrastructure/database"
	"menu-catalog/interfaces/api/handlers"
	"menu-catalog/pkg/config"
	"menu-catalog/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB *gorm.DB

	// Repositories
	CategoryRepository   repositories.CategoryRepository
	GenreRepository      repositories.GenreRepository
	IngredientRepository repositories.IngredientRepository
	DishRepository       repositories.DishRepository

	// Services
	DishService       services.DishService
	IngredientService services.IngredientService
	MasterDataService services.MasterDataService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	// Seed master data before the first request can hit an empty catalog.
	if err := c.MasterDataService.Seed(context.Background()); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initDatabase() error {
	dbConfig := database.Config{
		Driver:   c.Config.Database.Driver,
		Path:     c.Config.Database.Path,
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver)

	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	return nil
}

func (c *Container) initRepositories() {
	c.CategoryRepository = database.NewCategoryRepository(c.DB)
	c.GenreRepository = database.NewGenreRepository(c.DB)
	c.IngredientRepository = database.NewIngredientRepository(c.DB)
	c.DishRepository = database.NewDishRepository(c.DB)
}

func (c *Container) initServices() {
	limits := serviceimpl.DishLimits{
		MaxGenres:      c.Config.Catalog.MaxGenresPerDish,
		MaxIngredients: c.Config.Catalog.MaxIngredientsPerDish,
		MaxMemoLength:  c.Config.Catalog.MaxMemoLength,
	}

	c.DishService = serviceimpl.NewDishService(c.DishRepository, c.GenreRepository, c.IngredientRepository, limits)
	c.IngredientService = serviceimpl.NewIngredientService(c.IngredientRepository, c.CategoryRepository)
	c.MasterDataService = serviceimpl.NewMasterDataService(c.DB, c.GenreRepository)
}

// GetHandlerServices bundles the services the HTTP layer needs.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		DishService:       c.DishService,
		IngredientService: c.IngredientService,
		MasterDataService: c.MasterDataService,
		Catalog:           c.Config.Catalog,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
