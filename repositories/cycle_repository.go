package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fueltracker-api/models"
)

// ErrCycleAlreadyClosed is returned when the active cycle was closed by a
// concurrent request between reading it and flipping it.
var ErrCycleAlreadyClosed = errors.New("active cycle was closed concurrently")

type CycleRepository struct {
	db *gorm.DB
}

func NewCycleRepository(db *gorm.DB) *CycleRepository {
	return &CycleRepository{db: db}
}

// Active returns the currently active tank cycle, creating one when none
// exists yet. The create path re-checks under a locking read inside a
// transaction so two concurrent first requests cannot both insert an
// active cycle.
func (r *CycleRepository) Active() (*models.TankCycle, error) {
	var cycle models.TankCycle
	err := r.db.Where("is_active = ?", true).First(&cycle).Error
	if err == nil {
		return &cycle, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cycle = models.TankCycle{
		ID:        uuid.New().String(),
		StartDate: time.Now().UTC(),
		IsActive:  true,
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.TankCycle
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("is_active = ?", true).First(&existing).Error
		if err == nil {
			// Someone else created it since the unlocked read.
			cycle = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&cycle).Error
	})
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// List returns all cycles, newest first by start date.
func (r *CycleRepository) List() ([]models.TankCycle, error) {
	var cycles []models.TankCycle
	if err := r.db.Order("start_date DESC").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (r *CycleRepository) FindByID(id string) (*models.TankCycle, error) {
	var cycle models.TankCycle
	if err := r.db.First(&cycle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cycle, nil
}

// Close ends the active cycle and opens a new one atomically, so exactly
// one active cycle exists at every point in time. The UPDATE only matches
// while the cycle is still active; when a concurrent close got there
// first, nothing is flipped and ErrCycleAlreadyClosed comes back instead
// of a second active cycle being minted. Returns the closed cycle.
func (r *CycleRepository) Close() (*models.TankCycle, error) {
	closed, err := r.Active()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	next := models.TankCycle{
		ID:        uuid.New().String(),
		StartDate: now,
		IsActive:  true,
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.TankCycle{}).
			Where("id = ? AND is_active = ?", closed.ID, true).
			Updates(map[string]interface{}{
				"is_active": false,
				"end_date":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCycleAlreadyClosed
		}
		return tx.Create(&next).Error
	})
	if err != nil {
		return nil, err
	}

	closed.IsActive = false
	closed.EndDate = &now
	return closed, nil
}

// Delete removes a cycle and all of its rides in one transaction. Callers
// must reject the active cycle before getting here.
func (r *CycleRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tank_cycle_id = ?", id).Delete(&models.Ride{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TankCycle{}, "id = ?", id).Error
	})
}
