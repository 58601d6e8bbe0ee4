package models

import "time"

// User is a talent account. The profile attribute bag below the credential
// block is opaque payload: every field is optional and none participates in an
// invariant. Profile updates replace the whole bag (absent fields become NULL).
type User struct {
	BaseModel
	Name          string        `gorm:"not null" json:"name"`
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string        `gorm:"column:password;not null" json:"-"`
	Mobile        string        `gorm:"uniqueIndex;not null" json:"mobile"`
	Plan          Plan          `gorm:"type:varchar(20);default:'free'" json:"plan"`
	AccountStatus AccountStatus `gorm:"embedded" json:"status"`

	// Profile attribute bag
	Gender             *string    `json:"gender"`
	Weight             *string    `json:"weight"`
	FacebookLink       *string    `json:"facebook_link"`
	City               *string    `json:"city"`
	HairColor          *string    `json:"hair_color"`
	State              *string    `json:"state"`
	AvailableFrom      *time.Time `json:"available_from"`
	BodyType           *string    `json:"body_type"`
	WillingToTravel    *bool      `json:"willing_to_travel"`
	SkinTone           *string    `json:"skin_tone"`
	PreferredLocations *string    `gorm:"type:text" json:"preferred_locations"`
	LanguagesKnown     *string    `gorm:"type:text" json:"languages_known"`
	PastProjects       *string    `gorm:"type:text" json:"past_projects"`
	DialectsAccents    *string    `gorm:"type:text" json:"dialects_accents"`
	SpecialTraining    *string    `gorm:"column:special_appearances_or_training;type:text" json:"special_appearances_or_training"`
	Skills             *string    `gorm:"type:text" json:"skills"`

	// Stored blob references (written by the upload path, never inline data)
	ProfilePhoto  *string `json:"profile_photo"`
	HeadshotPhoto *string `json:"headshot_photo"`
	FullBodyPhoto *string `json:"full_body_photo"`
	IntroVideo    *string `json:"intro_video"`
}

// PublicProfile is the login/profile response shape: identity and plan fields
// without the credential digest.
type PublicProfile struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Mobile      string     `json:"mobile"`
	Plan        Plan       `json:"plan"`
	Suspended   bool       `json:"suspended"`
	SuspendedTo *time.Time `json:"suspended_to"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Public projects the user onto its API-visible profile.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Mobile:      u.Mobile,
		Plan:        u.Plan,
		Suspended:   u.AccountStatus.Suspended,
		SuspendedTo: u.AccountStatus.SuspendedTo,
		CreatedAt:   u.CreatedAt,
	}
}
