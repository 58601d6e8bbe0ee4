package handlers

import (
	"net/http"

	"castlink_backend/internal/models"
	"castlink_backend/internal/services"
	"castlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// HomeHandler обслуживает публичный контент главной страницы
type HomeHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewHomeHandler(base *BaseHandler, contentService services.ContentService) *HomeHandler {
	return &HomeHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

// RegisterRoutes регистрирует маршруты /api/home (все публичные)
func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	home := rg.Group("/home")
	{
		home.GET("/home-video", h.GetHomeVideo)
		home.GET("/banners", h.GetBanners)
		home.GET("/about-us", h.GetAboutUs)
		home.GET("/terms", h.GetTerms)
		home.GET("/privacy", h.GetPrivacy)
	}
}

func (h *HomeHandler) GetHomeVideo(c *gin.Context) {
	db := h.GetDB(c)

	video, err := h.contentService.GetHomeVideo(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if video.VideoPath == "" {
		h.HandleServiceError(c, apperrors.ErrContentNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"video":   video,
	})
}

func (h *HomeHandler) GetBanners(c *gin.Context) {
	db := h.GetDB(c)

	banners, err := h.contentService.ListBanners(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"banners": banners,
	})
}

func (h *HomeHandler) GetAboutUs(c *gin.Context) { h.getDocument(c, models.DocumentAboutUs) }
func (h *HomeHandler) GetTerms(c *gin.Context)   { h.getDocument(c, models.DocumentTerms) }
func (h *HomeHandler) GetPrivacy(c *gin.Context) { h.getDocument(c, models.DocumentPrivacy) }

func (h *HomeHandler) getDocument(c *gin.Context, kind models.DocumentKind) {
	db := h.GetDB(c)

	doc, err := h.contentService.GetDocument(db, kind)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if doc.HTMLContent == "" {
		h.HandleServiceError(c, apperrors.ErrContentNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"document": doc,
	})
}
