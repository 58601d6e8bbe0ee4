package database

import (
	"errors"
	"fmt"

	"castlink_backend/internal/logger"
	"castlink_backend/internal/models"

	"gorm.io/gorm"
)

// Seed гарантирует наличие строк, которые код считает всегда существующими:
// единственную запись home-видео (id=1) и по одному документу на каждый вид.
func Seed(db *gorm.DB) error {
	if err := seedHomeVideo(db); err != nil {
		return fmt.Errorf("seed home video: %w", err)
	}

	kinds := []models.DocumentKind{
		models.DocumentTerms,
		models.DocumentPrivacy,
		models.DocumentAboutUs,
	}
	for _, kind := range kinds {
		if err := seedDocument(db, kind); err != nil {
			return fmt.Errorf("seed document %s: %w", kind, err)
		}
	}

	logger.Info("Database seeded")
	return nil
}

func seedHomeVideo(db *gorm.DB) error {
	var video models.HomeVideo
	err := db.First(&video, "id = ?", 1).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	video = models.HomeVideo{}
	video.ID = 1
	return db.Create(&video).Error
}

func seedDocument(db *gorm.DB, kind models.DocumentKind) error {
	var doc models.SiteDocument
	err := db.First(&doc, "kind = ?", kind).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	doc = models.SiteDocument{Kind: kind}
	return db.Create(&doc).Error
}
