package model

import "time"

// User represents an account able to authenticate against the API. In
// practice exactly one row carries IsAdmin, though the model allows more.
// PasswordHash is nil for provider-only identities, which makes password
// login and password change fail closed for them.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	ImageURL     *string   `json:"image_url,omitempty" gorm:"size:512"`
	Provider     string    `json:"provider" gorm:"size:50;default:'admin'"`
	ProviderID   *string   `json:"provider_id,omitempty" gorm:"size:255"`
	PasswordHash *string   `json:"-" gorm:"size:255"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
