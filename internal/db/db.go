package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"internmatch/internal/model"
)

// Open returns a connected GORM DB for the given driver (mysql, postgres or sqlite).
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// :memory: databases are per connection.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func tables() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Admin{},
		&model.Internship{},
		&model.Tracker{},
	}
}

// Migrate creates or updates the schema. With reset set, existing tables are dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		log.Warn().Msg("RESET_DB set, dropping all tables")
		for _, table := range tables() {
			if err := db.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("drop table failed (may not exist)")
			}
		}
	}

	if err := db.AutoMigrate(tables()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
