package services

import "castlink_backend/internal/email"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	TicketService  TicketService
	JobPostService JobPostService
	ContentService ContentService
	AdminService   AdminService
	UploadService  UploadService
	EmailProvider  email.Provider
}
