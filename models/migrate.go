package models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Migrate creates or updates the tables backing the postgres project store.
func Migrate(db *gorm.DB) error {
	// Set up verbose logging for migration
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
		Logger:                 newLogger,
	})

	if err := migrateDB.AutoMigrate(&Project{}); err != nil {
		return fmt.Errorf("migrate projects: %w", err)
	}
	return nil
}
