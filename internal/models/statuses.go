package models

type Plan string
type Role string
type DocumentKind string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"

	RoleUser       Role = "user"
	RoleProduction Role = "production"
	RoleAdmin      Role = "admin"

	DocumentTerms   DocumentKind = "terms"
	DocumentPrivacy DocumentKind = "privacy"
	DocumentAboutUs DocumentKind = "about_us"
)
