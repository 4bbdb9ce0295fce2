package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brownkp/europatch/internal/models"
)

// Connect opens the Postgres connection used by the whole service.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Module{},
		&models.ModuleConnection{},
		&models.ModuleControl{},
		&models.PatchIdea{},
		&models.PatchModule{},
		&models.PatchConnection{},
		&models.PatchControlSetting{},
		&models.UserRack{},
		&models.RackModule{},
		&models.ForumSource{},
	)
}
