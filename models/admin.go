package models

import (
	"time"
)

// Admin is a singleton row holding the administrator credential.
// PasswordChanged stays false until the default password is rotated,
// so clients can force a change after the first login.
type Admin struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PasswordHash    string    `json:"-" gorm:"not null;size:255"`
	PasswordChanged bool      `json:"password_changed" gorm:"default:false"`
	UpdatedAt       time.Time `json:"updated_at"`
}
