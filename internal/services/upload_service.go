package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"castlink_backend/internal/imageprocessor"
	"castlink_backend/internal/logger"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/storage"
	"castlink_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// mediaColumns — допустимые виды медиа профиля и их колонки
var mediaColumns = map[string]string{
	"profile_photo":   "profile_photo",
	"headshot_photo":  "headshot_photo",
	"full_body_photo": "full_body_photo",
	"intro_video":     "intro_video",
}

type UploadService interface {
	// UploadUserMedia сохраняет файл и записывает его URL в колонку профиля
	UploadUserMedia(ctx context.Context, db *gorm.DB, userID uint, kind, filename, contentType string, r io.Reader) (string, error)

	// UploadContentAsset сохраняет файл контента (баннер, home-видео) и
	// возвращает его публичный URL
	UploadContentAsset(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error)
}

type UploadServiceImpl struct {
	store     storage.Storage
	userRepo  repositories.UserRepository
	processor *imageprocessor.Processor
}

func NewUploadService(store storage.Storage, userRepo repositories.UserRepository) UploadService {
	return &UploadServiceImpl{
		store:     store,
		userRepo:  userRepo,
		processor: imageprocessor.NewProcessor(85),
	}
}

func (s *UploadServiceImpl) UploadUserMedia(ctx context.Context, db *gorm.DB, userID uint, kind, filename, contentType string, r io.Reader) (string, error) {
	column, ok := mediaColumns[kind]
	if !ok {
		return "", apperrors.NewBadRequestError("Unknown media type: " + kind)
	}

	url, err := s.save(ctx, kind, filename, contentType, r)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.SetMediaRef(db, userID, column, url); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrAccountNotFound
		}
		return "", apperrors.InternalError(err)
	}

	logger.Info("user media uploaded", "user_id", userID, "kind", kind)
	return url, nil
}

func (s *UploadServiceImpl) UploadContentAsset(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	return s.save(ctx, folder, filename, contentType, r)
}

func (s *UploadServiceImpl) save(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	// Фотографии нормализуются перед записью; видео и прочее идёт как есть
	if contentType == "image/jpeg" || contentType == "image/png" {
		normalized, err := s.processor.Normalize(r)
		if err != nil {
			return "", apperrors.NewBadRequestError("The uploaded file is not a valid image")
		}
		r = normalized
	}

	objectPath := folder + "/" + uuid.NewString() + filepath.Ext(filename)

	if err := s.store.Save(ctx, objectPath, r, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, objectPath)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
