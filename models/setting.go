package models

// Setting is a singleton row holding the shared pricing configuration.
// database.Bootstrap guarantees exactly one instance exists.
type Setting struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Currency  string  `json:"currency" gorm:"not null;size:10;default:'CZK'"`
	FuelPrice float64 `json:"fuel_price" gorm:"not null;default:35.5"` // cost per liter
}
