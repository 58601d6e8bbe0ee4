package dto

// UpdateProfileRequest carries the full profile attribute bag. The update is a
// deliberate full replace: any field the client omits is persisted as NULL,
// overwriting the previous value.
type UpdateProfileRequest struct {
	Gender             *string `json:"gender"`
	Weight             *string `json:"weight"`
	FacebookLink       *string `json:"facebook_link"`
	City               *string `json:"city"`
	HairColor          *string `json:"hair_color"`
	State              *string `json:"state"`
	AvailableFrom      *string `json:"available_from" binding:"omitempty,datetime=2006-01-02"`
	BodyType           *string `json:"body_type"`
	WillingToTravel    *bool   `json:"willing_to_travel"`
	SkinTone           *string `json:"skin_tone"`
	PreferredLocations *string `json:"preferred_locations"`
	LanguagesKnown     *string `json:"languages_known"`
	PastProjects       *string `json:"past_projects"`
	DialectsAccents    *string `json:"dialects_accents"`
	SpecialTraining    *string `json:"special_appearances_or_training"`
	Skills             *string `json:"skills"`

	// Blob-storage references produced by the upload path
	ProfilePhoto  *string `json:"profile_photo"`
	HeadshotPhoto *string `json:"headshot_photo"`
	FullBodyPhoto *string `json:"full_body_photo"`
	IntroVideo    *string `json:"intro_video"`
}
