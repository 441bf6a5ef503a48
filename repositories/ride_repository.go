package repositories

import (
	"gorm.io/gorm"

	"fueltracker-api/models"
)

type RideRepository struct {
	db *gorm.DB
}

func NewRideRepository(db *gorm.DB) *RideRepository {
	return &RideRepository{db: db}
}

func (r *RideRepository) Create(ride *models.Ride) error {
	return r.db.Create(ride).Error
}

func (r *RideRepository) FindByID(id string) (*models.Ride, error) {
	var ride models.Ride
	if err := r.db.Preload("User").First(&ride, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *RideRepository) Save(ride *models.Ride) error {
	return r.db.Save(ride).Error
}

func (r *RideRepository) Delete(id string) error {
	return r.db.Delete(&models.Ride{}, "id = ?", id).Error
}

// ListByCycle returns every ride of a cycle, for aggregation.
func (r *RideRepository) ListByCycle(cycleID string) ([]models.Ride, error) {
	var rides []models.Ride
	if err := r.db.Where("tank_cycle_id = ?", cycleID).Find(&rides).Error; err != nil {
		return nil, err
	}
	return rides, nil
}

// ListByUserAndCycle returns one user's rides within a cycle, newest first.
func (r *RideRepository) ListByUserAndCycle(userID, cycleID string) ([]models.Ride, error) {
	var rides []models.Ride
	if err := r.db.Preload("User").
		Where("user_id = ? AND tank_cycle_id = ?", userID, cycleID).
		Order("timestamp DESC").Find(&rides).Error; err != nil {
		return nil, err
	}
	return rides, nil
}
