package models

import (
	"time"
)

// BaseModel carries the numeric surrogate key and timestamps shared by all
// stored entities. IDs are assigned by the store on creation and never change.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// AccountStatus is the blocked/suspended state shared by every stored account
// variant. Blocked takes priority when both flags are set.
type AccountStatus struct {
	Blocked       bool       `gorm:"default:false" json:"blocked"`
	Suspended     bool       `gorm:"default:false" json:"suspended"`
	SuspendedFrom *time.Time `json:"suspended_from"`
	SuspendedTo   *time.Time `json:"suspended_to"`
}

// SuspensionExpired reports whether a suspension window has already passed and
// should be lazily cleared at the next evaluation.
func (s AccountStatus) SuspensionExpired(now time.Time) bool {
	return s.Suspended && s.SuspendedTo != nil && s.SuspendedTo.Before(now)
}
