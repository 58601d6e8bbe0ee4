package database

import (
	"fmt"

	"castlink_backend/internal/config"
	"castlink_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает соединение с базой по конфигурации. TranslateError
// включён, чтобы нарушения уникальности приходили как gorm.ErrDuplicatedKey
// независимо от драйвера.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "mysql", "":
		dialector = mysql.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate создаёт и обновляет всю схему при старте приложения. Запросы
// во время работы рассчитывают, что все таблицы уже существуют.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ProductionCompany{},
		&models.JobPost{},
		&models.Ticket{},
		&models.HomeVideo{},
		&models.Banner{},
		&models.SiteDocument{},
	)
}
