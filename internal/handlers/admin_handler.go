package handlers

import (
	"net/http"

	"castlink_backend/internal/models"
	"castlink_backend/internal/services"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	*BaseHandler
	authService    services.AuthService
	adminService   services.AdminService
	ticketService  services.TicketService
	contentService services.ContentService
	uploadService  services.UploadService
}

func NewAdminHandler(
	base *BaseHandler,
	authService services.AuthService,
	adminService services.AdminService,
	ticketService services.TicketService,
	contentService services.ContentService,
	uploadService services.UploadService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		authService:    authService,
		adminService:   adminService,
		ticketService:  ticketService,
		contentService: contentService,
		uploadService:  uploadService,
	}
}

// RegisterRoutes регистрирует маршруты /api/admin
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, adminAuth gin.HandlerFunc) {
	admin := rg.Group("/admin")
	{
		admin.POST("/login", h.Login)
	}

	authorized := admin.Group("")
	authorized.Use(adminAuth)
	{
		authorized.GET("/allUsers", h.AllUsers)
		authorized.PATCH("/users/:id/block", h.BlockUser)
		authorized.PATCH("/users/:id/unblock", h.UnblockUser)
		authorized.PATCH("/users/:id/suspend", h.SuspendUser)
		authorized.PATCH("/users/:id/unsuspend", h.UnsuspendUser)
		authorized.PATCH("/users/:id/plan", h.ChangePlan)

		authorized.GET("/fetchTickets", h.FetchTickets)

		authorized.GET("/terms", h.GetTerms)
		authorized.PUT("/terms", h.SetTerms)
		authorized.GET("/privacy", h.GetPrivacy)
		authorized.PUT("/privacy", h.SetPrivacy)
		authorized.GET("/about-us", h.GetAboutUs)
		authorized.PUT("/about-us", h.SetAboutUs)

		authorized.POST("/home-video", h.SetHomeVideo)
		authorized.POST("/banners", h.AddBanner)
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginAdmin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   resp.Token,
	})
}

func (h *AdminHandler) AllUsers(c *gin.Context) {
	db := h.GetDB(c)

	users, err := h.adminService.ListUsers(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.statusTransition(c, h.adminService.BlockUser, "User blocked")
}

func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.statusTransition(c, h.adminService.UnblockUser, "User unblocked")
}

func (h *AdminHandler) UnsuspendUser(c *gin.Context) {
	h.statusTransition(c, h.adminService.UnsuspendUser, "User unsuspended")
}

func (h *AdminHandler) SuspendUser(c *gin.Context) {
	userID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SuspendUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.adminService.SuspendUser(db, userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User suspended",
	})
}

func (h *AdminHandler) ChangePlan(c *gin.Context) {
	userID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ChangePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.adminService.ChangePlan(db, userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plan updated",
	})
}

func (h *AdminHandler) FetchTickets(c *gin.Context) {
	db := h.GetDB(c)

	tickets, err := h.ticketService.ListTickets(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tickets": tickets,
	})
}

func (h *AdminHandler) GetTerms(c *gin.Context)   { h.getDocument(c, models.DocumentTerms) }
func (h *AdminHandler) SetTerms(c *gin.Context)   { h.setDocument(c, models.DocumentTerms) }
func (h *AdminHandler) GetPrivacy(c *gin.Context) { h.getDocument(c, models.DocumentPrivacy) }
func (h *AdminHandler) SetPrivacy(c *gin.Context) { h.setDocument(c, models.DocumentPrivacy) }
func (h *AdminHandler) GetAboutUs(c *gin.Context) { h.getDocument(c, models.DocumentAboutUs) }
func (h *AdminHandler) SetAboutUs(c *gin.Context) { h.setDocument(c, models.DocumentAboutUs) }

// SetHomeVideo принимает multipart-файл, кладёт его в хранилище и сохраняет
// URL в единственной записи home-видео
func (h *AdminHandler) SetHomeVideo(c *gin.Context) {
	url, ok := h.uploadAsset(c, "home")
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.contentService.SetHomeVideo(db, url); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Home video updated",
		"videoUrl": url,
	})
}

func (h *AdminHandler) AddBanner(c *gin.Context) {
	url, ok := h.uploadAsset(c, "banners")
	if !ok {
		return
	}

	db := h.GetDB(c)

	banner, err := h.contentService.AddBanner(db, url)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Banner added",
		"banner":  banner,
	})
}

func (h *AdminHandler) uploadAsset(c *gin.Context, folder string) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("A file upload is required"))
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return "", false
	}
	defer file.Close()

	url, err := h.uploadService.UploadContentAsset(
		c.Request.Context(),
		folder,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return "", false
	}
	return url, true
}

func (h *AdminHandler) statusTransition(c *gin.Context, op func(db *gorm.DB, userID uint) error, message string) {
	userID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	if err := op(db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

func (h *AdminHandler) getDocument(c *gin.Context, kind models.DocumentKind) {
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

func (h *AdminHandler) setDocument(c *gin.Context, kind models.DocumentKind) {
	var req dto.SetDocumentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.contentService.SetDocument(db, kind, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Document saved",
	})
}
