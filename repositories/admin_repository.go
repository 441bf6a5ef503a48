package repositories

import (
	"gorm.io/gorm"

	"fueltracker-api/models"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Get returns the admin singleton. Bootstrap guarantees the row exists.
func (r *AdminRepository) Get() (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdatePassword stores a new password hash and marks the default
// credential as rotated.
func (r *AdminRepository) UpdatePassword(admin *models.Admin, passwordHash string) error {
	return r.db.Model(admin).Updates(map[string]interface{}{
		"password_hash":    passwordHash,
		"password_changed": true,
	}).Error
}
