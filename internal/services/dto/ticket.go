package dto

// CreateTicketRequest - support ticket submission
type CreateTicketRequest struct {
	Email       string `json:"email" binding:"required,email"`
	MobileNo    string `json:"mobile_no" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}
