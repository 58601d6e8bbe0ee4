package services

import (
	"errors"

	"castlink_backend/internal/models"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ContentService interface {
	GetHomeVideo(db *gorm.DB) (*models.HomeVideo, error)
	SetHomeVideo(db *gorm.DB, videoPath string) error

	ListBanners(db *gorm.DB) ([]models.Banner, error)
	AddBanner(db *gorm.DB, imagePath string) (*models.Banner, error)

	GetDocument(db *gorm.DB, kind models.DocumentKind) (*models.SiteDocument, error)
	SetDocument(db *gorm.DB, kind models.DocumentKind, req *dto.SetDocumentRequest) error
}

type ContentServiceImpl struct {
	contentRepo repositories.ContentRepository
}

func NewContentService(contentRepo repositories.ContentRepository) ContentService {
	return &ContentServiceImpl{contentRepo: contentRepo}
}

func (s *ContentServiceImpl) GetHomeVideo(db *gorm.DB) (*models.HomeVideo, error) {
	video, err := s.contentRepo.GetHomeVideo(db)
	if err != nil {
		if errors.Is(err, repositories.ErrContentNotFound) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return video, nil
}

func (s *ContentServiceImpl) SetHomeVideo(db *gorm.DB, videoPath string) error {
	if err := s.contentRepo.SetHomeVideo(db, videoPath); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ContentServiceImpl) ListBanners(db *gorm.DB) ([]models.Banner, error) {
	banners, err := s.contentRepo.ListBanners(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return banners, nil
}

func (s *ContentServiceImpl) AddBanner(db *gorm.DB, imagePath string) (*models.Banner, error) {
	banner, err := s.contentRepo.AddBanner(db, imagePath)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return banner, nil
}

func (s *ContentServiceImpl) GetDocument(db *gorm.DB, kind models.DocumentKind) (*models.SiteDocument, error) {
	doc, err := s.contentRepo.GetDocument(db, kind)
	if err != nil {
		if errors.Is(err, repositories.ErrContentNotFound) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return doc, nil
}

func (s *ContentServiceImpl) SetDocument(db *gorm.DB, kind models.DocumentKind, req *dto.SetDocumentRequest) error {
	if err := s.contentRepo.UpsertDocument(db, kind, req.HTMLContent); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
