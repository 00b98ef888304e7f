package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/murayeeto/HornetHelper/app/utils/logger"
)

type DatabaseMigration struct {
	gorm.Model
	Version string `gorm:"not null;uniqueIndex"`
}

type DBMigrator struct {
	db *gorm.DB
}

func NewDBMigrator(db *gorm.DB) *DBMigrator {
	return &DBMigrator{
		db: db,
	}
}

func (d *DBMigrator) initialize() error {
	if err := d.db.AutoMigrate(&DatabaseMigration{}); err != nil {
		return fmt.Errorf("failed to create 'database_migration' table: %w", err)
	}
	var count int64
	if err := d.db.Model(&DatabaseMigration{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to query migration records: %w", err)
	}
	if count == 0 {
		initialRecord := DatabaseMigration{Version: "000000"}
		if err := d.db.Create(&initialRecord).Error; err != nil {
			return fmt.Errorf("failed to insert initial migration record: %w", err)
		}
	}
	return nil
}

func (d *DBMigrator) Migrate() (err error) {
	if err = d.initialize(); err != nil {
		return err
	}
	for _, model := range SchemaRegistry {
		err = d.db.AutoMigrate(model)
		if err != nil {
			logger.GetLogger().
				WithField("error_code", "8c1d4e72-5a94-45b0-93dd-0d6d3a6f2ce1").
				Fatalf("failed to auto migrate schema: %T, error: %v", model, err)
			return err
		}
	}
	return nil
}
