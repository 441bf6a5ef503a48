package models

import (
	"time"
)

// TankCycle is the period between two refills of the shared tank.
// At most one cycle is active at any time; closing the active cycle
// stamps EndDate and opens a fresh one in the same transaction.
type TankCycle struct {
	ID        string     `json:"id" gorm:"primaryKey;size:191"`
	StartDate time.Time  `json:"start_date" gorm:"not null;index"`
	EndDate   *time.Time `json:"end_date"`
	IsActive  bool       `json:"is_active" gorm:"default:true;index"`

	Rides []Ride `json:"-" gorm:"foreignKey:TankCycleID"`
}
