package app

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/lumenlearn/lumen-backend/internal/data/db"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	repoSet := wireRepos(theDB, log)
	serviceSet := wireServices(cfg, repoSet, log)

	return &App{
		Log:      log,
		DB:       theDB,
		Cfg:      cfg,
		Repos:    repoSet,
		Services: serviceSet,
	}, nil
}

func (a *App) Close() {
	if a == nil || a.Log == nil {
		return
	}
	a.Log.Sync()
}
