package app

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/koyif/accountsvc/internal/config"
	"github.com/koyif/accountsvc/pkg/logger"
)

type App struct {
	Config *config.Config
	DB     *sql.DB
}

func New(cfg *config.Config) (*App, error) {
	db, err := initDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err = migrateDB(cfg); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Log.Error("error closing database after migration failure", logger.Error(closeErr))
		}
		return nil, err
	}

	return &App{
		Config: cfg,
		DB:     db,
	}, nil
}

func initDB(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		err := db.Close()
		if err != nil {
			return nil, fmt.Errorf("error closing database after ping failure: %w", err)
		}
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}

func migrateDB(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.MigrationsDir, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("error creating migrator: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}
