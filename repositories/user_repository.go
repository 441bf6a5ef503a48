package repositories

import (
	"errors"

	"gorm.io/gorm"

	"fueltracker-api/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListActive returns active users in creation order.
func (r *UserRepository) ListActive() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_active = ?", true).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListAll returns every user, active or not. Stats aggregation needs the
// inactive ones because historic rides still reference them.
func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ActiveNameTaken reports whether an active user other than excludeID
// already uses the name.
func (r *UserRepository) ActiveNameTaken(name, excludeID string) (bool, error) {
	var user models.User
	query := r.db.Where("name = ? AND is_active = ?", name, true)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// Deactivate soft-deletes a user; their rides stay attributed.
func (r *UserRepository) Deactivate(user *models.User) error {
	return r.db.Model(user).Update("is_active", false).Error
}
