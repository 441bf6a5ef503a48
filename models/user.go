package models

import (
	"time"
)

// User is a driver sharing the vehicle. Users are never hard-deleted:
// IsActive flips to false so historic rides keep their attribution.
// Name uniqueness is enforced among active users only, which is why
// there is no database-level unique index on it.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	Name         string    `json:"name" gorm:"not null;size:50;index"`
	Color        string    `json:"color" gorm:"not null;size:7"` // display hex code, e.g. #ff8800
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Rides []Ride `json:"-" gorm:"foreignKey:UserID"`
}
