package repositories

import (
	"errors"
	"time"

	"castlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContentNotFound = errors.New("content not found")

// homeVideoRowID is the id of the single logical home-video row.
const homeVideoRowID = 1

// ContentRepository stores the CMS-style site content: the singleton home
// video row, the banner list, and one SiteDocument per kind.
type ContentRepository interface {
	GetHomeVideo(db *gorm.DB) (*models.HomeVideo, error)
	SetHomeVideo(db *gorm.DB, videoPath string) error

	ListBanners(db *gorm.DB) ([]models.Banner, error)
	AddBanner(db *gorm.DB, imagePath string) (*models.Banner, error)

	GetDocument(db *gorm.DB, kind models.DocumentKind) (*models.SiteDocument, error)
	UpsertDocument(db *gorm.DB, kind models.DocumentKind, html string) error
}

type ContentRepositoryImpl struct{}

func NewContentRepository() ContentRepository {
	return &ContentRepositoryImpl{}
}

func (r *ContentRepositoryImpl) GetHomeVideo(db *gorm.DB) (*models.HomeVideo, error) {
	var video models.HomeVideo
	err := db.First(&video, "id = ?", homeVideoRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *ContentRepositoryImpl) SetHomeVideo(db *gorm.DB, videoPath string) error {
	return db.Model(&models.HomeVideo{}).Where("id = ?", homeVideoRowID).Updates(map[string]interface{}{
		"video_path": videoPath,
		"updated_at": time.Now(),
	}).Error
}

func (r *ContentRepositoryImpl) ListBanners(db *gorm.DB) ([]models.Banner, error) {
	var banners []models.Banner
	if err := db.Order("id ASC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *ContentRepositoryImpl) AddBanner(db *gorm.DB, imagePath string) (*models.Banner, error) {
	banner := &models.Banner{ImagePath: imagePath}
	if err := db.Create(banner).Error; err != nil {
		return nil, err
	}
	return banner, nil
}

func (r *ContentRepositoryImpl) GetDocument(db *gorm.DB, kind models.DocumentKind) (*models.SiteDocument, error) {
	var doc models.SiteDocument
	err := db.First(&doc, "kind = ?", kind).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *ContentRepositoryImpl) UpsertDocument(db *gorm.DB, kind models.DocumentKind, html string) error {
	var doc models.SiteDocument
	err := db.First(&doc, "kind = ?", kind).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			doc = models.SiteDocument{Kind: kind, HTMLContent: html}
			return db.Create(&doc).Error
		}
		return err
	}
	return db.Model(&doc).Updates(map[string]interface{}{
		"html_content": html,
		"updated_at":   time.Now(),
	}).Error
}
