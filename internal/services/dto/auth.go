package dto

import (
	"castlink_backend/internal/models"
)

// RegisterUserRequest - talent registration
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
}

// LoginRequest - credential login, shared by all variants
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterProductionRequest - production-company registration
type RegisterProductionRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	City        string `json:"city" binding:"required"`
	TypeOfWork  string `json:"type_of_work" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UserLoginResponse - token plus the public profile fields
type UserLoginResponse struct {
	Token string               `json:"token"`
	User  models.PublicProfile `json:"user"`
}

// ProductionLoginResponse - token plus public company fields
type ProductionLoginResponse struct {
	Token string               `json:"token"`
	User  ProductionPublicInfo `json:"user"`
}

// ProductionPublicInfo - company fields safe to return on login
type ProductionPublicInfo struct {
	ID          uint   `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
}

// AdminLoginResponse - admin variant carries only the token
type AdminLoginResponse struct {
	Token string `json:"token"`
}
