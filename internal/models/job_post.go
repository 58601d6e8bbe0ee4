package models

import "time"

// JobPost is a casting call owned by exactly one production company. Posts are
// deleted together with their owner.
type JobPost struct {
	BaseModel
	CompanyID uint `gorm:"not null;index" json:"company_id"`

	ProjectType        string     `gorm:"not null" json:"project_type"`
	ShootingLocation   string     `gorm:"not null" json:"shooting_location"`
	RoleTitle          string     `gorm:"not null" json:"role_title"`
	Gender             string     `gorm:"not null" json:"gender"`
	ApplicationDeadline time.Time `gorm:"not null" json:"application_deadline"`

	ProjectDescription   *string    `gorm:"type:text" json:"project_description"`
	AuditionType         *string    `json:"audition_type"`
	LanguageRequired     *string    `json:"language_required"`
	AuditionDates        *time.Time `json:"audition_dates"`
	ShootDates           *time.Time `json:"shoot_dates"`
	ShootDuration        *string    `json:"shoot_duration"`
	AgeRange             *string    `json:"age_range"`
	AvailabilityRequired *string    `json:"availability_required"`
	Height               *string    `json:"height"`
	BodyType             *string    `json:"body_type"`
	PaymentType          *string    `json:"payment_type"`
	SkillsNeeded         *string    `gorm:"type:text" json:"skills_needed"`
	AdditionalPerks      *string    `gorm:"type:text" json:"additional_perks"`
	RoleDescription      *string    `gorm:"type:text" json:"role_description"`

	PostedBy string `json:"posted_by"`
}
