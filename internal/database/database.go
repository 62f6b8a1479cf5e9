package database

import (
	"github.com/mhvocab/api/internal/config"
	"github.com/mhvocab/api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Document{},
		&model.Collection{},
		&model.Word{},
	)
	if err != nil {
		return err
	}

	// Registration does a lookup before inserting, but only this index makes
	// email uniqueness hold under concurrent registrations.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)")

	return nil
}
