package handlers

import (
	"net/http"

	"castlink_backend/internal/middleware"
	"castlink_backend/internal/services"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProductionHandler struct {
	*BaseHandler
	authService    services.AuthService
	jobPostService services.JobPostService
}

func NewProductionHandler(
	base *BaseHandler,
	authService services.AuthService,
	jobPostService services.JobPostService,
) *ProductionHandler {
	return &ProductionHandler{
		BaseHandler:    base,
		authService:    authService,
		jobPostService: jobPostService,
	}
}

// RegisterRoutes регистрирует маршруты /api/production
func (h *ProductionHandler) RegisterRoutes(rg *gin.RouterGroup, productionAuth gin.HandlerFunc) {
	production := rg.Group("/production")
	{
		production.POST("/register", h.Register)
		production.POST("/login", h.Login)
	}

	authorized := production.Group("")
	authorized.Use(productionAuth)
	{
		authorized.POST("/addJobPost", h.AddJobPost)
		authorized.GET("/jobPosts", h.ListJobPosts)
	}
}

func (h *ProductionHandler) Register(c *gin.Context) {
	var req dto.RegisterProductionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	companyID, err := h.authService.RegisterProduction(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Registration successful",
		"productionId": companyID,
	})
}

func (h *ProductionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.authService.LoginProduction(db, &req)
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

func (h *ProductionHandler) AddJobPost(c *gin.Context) {
	company, ok := middleware.CurrentCompany(c)
	if !ok {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	var req dto.CreateJobPostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	postID, err := h.jobPostService.CreateJobPost(db, company, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Job post created",
		"jobPostId": postID,
	})
}

func (h *ProductionHandler) ListJobPosts(c *gin.Context) {
	company, ok := middleware.CurrentCompany(c)
	if !ok {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	db := h.GetDB(c)

	posts, err := h.jobPostService.ListCompanyPosts(db, company.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"jobPosts": posts,
	})
}
