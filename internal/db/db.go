package db

import (
	"fmt"
	"log"
	"time"

	"github.com/snnyvrz/go-book-crud-gin/internal/config"
	"github.com/snnyvrz/go-book-crud-gin/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultDelayBetweenTry = 2 * time.Second

// delayBetweenTry is a variable so tests can shorten it.
var delayBetweenTry = defaultDelayBetweenTry

func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		return postgres.Open(cfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Open returns a gorm handle with driver errors translated into gorm
// sentinels such as gorm.ErrDuplicatedKey.
func Open(d gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(d, &gorm.Config{TranslateError: true})
}

func ConnectWithRetry(cfg *config.Config) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	attempts := cfg.DBConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *gorm.DB
		db, err = Open(d)
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					return db, nil
				}
				_ = sqlDB.Close()
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Printf("db not ready (attempt %d/%d): %v", attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(delayBetweenTry)
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", attempts, err)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Book{})
}

// Close releases the underlying pool. It is called once at process teardown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
