package models

// ProductionCompany is a production-company account. It carries the same
// status fields as User so the account gate applies uniformly to both stored
// variants.
type ProductionCompany struct {
	BaseModel
	FullName      string        `gorm:"not null" json:"full_name"`
	CompanyName   string        `gorm:"not null" json:"company_name"`
	City          string        `gorm:"not null" json:"city"`
	TypeOfWork    string        `gorm:"not null" json:"type_of_work"`
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber   string        `gorm:"uniqueIndex;not null" json:"phone_number"`
	PasswordHash  string        `gorm:"column:password;not null" json:"-"`
	AccountStatus AccountStatus `gorm:"embedded" json:"status"`

	JobPosts []JobPost `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
