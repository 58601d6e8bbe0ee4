package models

// HomeVideo is a singleton table: the one logical row always has id 1 and is
// seeded with an empty path at startup.
type HomeVideo struct {
	BaseModel
	VideoPath string `json:"video_path"`
}

// Banner is a promotional image shown on the landing page.
type Banner struct {
	BaseModel
	ImagePath string `gorm:"not null" json:"image_path"`
}

// SiteDocument holds one HTML document per kind (terms, privacy, about-us).
// One row per kind, enforced by the unique index and the seeding step.
type SiteDocument struct {
	BaseModel
	Kind        DocumentKind `gorm:"type:varchar(20);uniqueIndex;not null" json:"kind"`
	HTMLContent string       `gorm:"type:text" json:"html_content"`
}
