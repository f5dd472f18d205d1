package models

// Branch is a physical sales location being tracked.
// IsCustom distinguishes user-created branches from the seeded defaults.
type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsCustom bool   `json:"isCustom"`
}
