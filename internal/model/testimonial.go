package model

import "time"

// Testimonial is a visitor-submitted endorsement. Submissions are
// anonymous: Name is free text and UserID is a legacy linkage kept
// nullable for rows created by earlier versions of the site. A row is
// publicly visible if and only if IsApproved is set.
type Testimonial struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     *uint     `json:"user_id,omitempty"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Quote      string    `json:"quote" gorm:"type:text;not null"`
	Title      *string   `json:"title,omitempty" gorm:"size:255"`
	Company    *string   `json:"company,omitempty" gorm:"size:255"`
	ImageURL   *string   `json:"image_url,omitempty" gorm:"size:512"`
	IsApproved bool      `json:"is_approved" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
