package models

// Ticket is an append-only support request. No status field, no enforced
// relation to an account.
type Ticket struct {
	BaseModel
	Email       string `gorm:"not null" json:"email"`
	MobileNo    string `gorm:"not null" json:"mobile_no"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
}
