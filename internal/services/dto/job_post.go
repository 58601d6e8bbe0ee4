package dto

// CreateJobPostRequest — новый кастинг от продакшн-компании.
// Обязательны только пять ключевых полей, остальное опционально.
// Даты принимаются как YYYY-MM-DD.
type CreateJobPostRequest struct {
	ProjectType         string `json:"project_type" binding:"required"`
	ShootingLocation    string `json:"shooting_location" binding:"required"`
	RoleTitle           string `json:"role_title" binding:"required"`
	Gender              string `json:"gender" binding:"required"`
	ApplicationDeadline string `json:"application_deadline" binding:"required,datetime=2006-01-02"`

	ProjectDescription   *string `json:"project_description"`
	AuditionType         *string `json:"audition_type"`
	LanguageRequired     *string `json:"language_required"`
	AuditionDates        *string `json:"audition_dates" binding:"omitempty,datetime=2006-01-02"`
	ShootDates           *string `json:"shoot_dates" binding:"omitempty,datetime=2006-01-02"`
	ShootDuration        *string `json:"shoot_duration"`
	AgeRange             *string `json:"age_range"`
	AvailabilityRequired *string `json:"availability_required"`
	Height               *string `json:"height"`
	BodyType             *string `json:"body_type"`
	PaymentType          *string `json:"payment_type"`
	SkillsNeeded         *string `json:"skills_needed"`
	AdditionalPerks      *string `json:"additional_perks"`
	RoleDescription      *string `json:"role_description"`
}
