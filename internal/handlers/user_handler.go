package handlers

import (
	"net/http"

	"castlink_backend/internal/middleware"
	"castlink_backend/internal/services"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	authService    services.AuthService
	profileService services.ProfileService
	ticketService  services.TicketService
	uploadService  services.UploadService
}

func NewUserHandler(
	base *BaseHandler,
	authService services.AuthService,
	profileService services.ProfileService,
	ticketService services.TicketService,
	uploadService services.UploadService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		authService:    authService,
		profileService: profileService,
		ticketService:  ticketService,
		uploadService:  uploadService,
	}
}

// RegisterRoutes регистрирует маршруты /api/user
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, userAuth gin.HandlerFunc) {
	user := rg.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/login", h.Login)
		user.POST("/createTicket", h.CreateTicket)
	}

	authorized := user.Group("")
	authorized.Use(userAuth)
	{
		authorized.GET("/profile", h.GetProfile)
		authorized.PUT("/profile", h.UpdateProfile)
		authorized.POST("/media", h.UploadMedia)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	userID, err := h.authService.RegisterUser(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"userId":  userID,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.authService.LoginUser(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.profileService.UpdateProfile(db, user.ID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated",
	})
}

// UploadMedia принимает multipart-файл и тип медиа (profile_photo,
// headshot_photo, full_body_photo, intro_video), сохраняет файл в хранилище
// и записывает URL в профиль
func (h *UserHandler) UploadMedia(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	kind := c.PostForm("type")
	if kind == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Media type is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("A file upload is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	db := h.GetDB(c)

	url, err := h.uploadService.UploadUserMedia(
		c.Request.Context(),
		db,
		user.ID,
		kind,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Media uploaded",
		"url":     url,
	})
}

func (h *UserHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	ticketID, err := h.ticketService.CreateTicket(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Ticket created",
		"ticketId": ticketID,
	})
}
