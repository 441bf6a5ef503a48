package models

import (
	"time"
)

// Ride is one logged trip. All three measurements are always persisted;
// the reconciler derives the missing one (or validates consistency) before
// a ride is created or updated, so |fuel - distance*consumption/100| <= 0.1
// holds for every stored row.
type Ride struct {
	ID                string    `json:"id" gorm:"primaryKey;size:191"`
	UserID            string    `json:"user_id" gorm:"not null;size:191;index"`
	TankCycleID       string    `json:"tank_cycle_id" gorm:"not null;size:191;index"`
	Timestamp         time.Time `json:"timestamp" gorm:"not null"`
	DistanceKm        float64   `json:"distance_km" gorm:"not null"`
	ConsumptionL100Km float64   `json:"consumption_l100km" gorm:"not null"`
	FuelLiters        float64   `json:"fuel_liters" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
