package repositories

import (
	"gorm.io/gorm"

	"fueltracker-api/models"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the settings singleton. Bootstrap guarantees the row exists.
func (r *SettingRepository) Get() (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Update(currency string, fuelPrice float64) (*models.Setting, error) {
	setting, err := r.Get()
	if err != nil {
		return nil, err
	}
	setting.Currency = currency
	setting.FuelPrice = fuelPrice
	if err := r.db.Save(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}
