package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fueltracker-api/models"
	"fueltracker-api/repositories"
	"fueltracker-api/services"
	"fueltracker-api/utils"
)

type RideController struct {
	rides  *repositories.RideRepository
	cycles *repositories.CycleRepository
	users  *repositories.UserRepository
}

func NewRideController(db *gorm.DB) *RideController {
	return &RideController{
		rides:  repositories.NewRideRepository(db),
		cycles: repositories.NewCycleRepository(db),
		users:  repositories.NewUserRepository(db),
	}
}

type CreateRideRequest struct {
	UserID            string    `json:"user_id" binding:"required"`
	Timestamp         time.Time `json:"timestamp" binding:"required"`
	DistanceKm        *float64  `json:"distance_km" binding:"omitempty,gt=0"`
	ConsumptionL100Km *float64  `json:"consumption_l100km" binding:"omitempty,gt=0"`
	FuelLiters        *float64  `json:"fuel_liters" binding:"omitempty,gt=0"`
}

// CreateRide logs a trip. Any two of the three measurements suffice; the
// reconciler derives or validates the rest before the ride is stored
// against the active cycle.
func (rc *RideController) CreateRide(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	user, err := rc.users.FindByID(req.UserID)
	if err != nil {
		if isNotFound(err) {
			utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "User not found")
		} else {
			utils.SendInternalError(c, "Failed to load user")
		}
		return
	}
	if !user.IsActive {
		utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "User not found")
		return
	}

	distance, consumption, fuel, err := services.ReconcileRide(req.DistanceKm, req.ConsumptionL100Km, req.FuelLiters)
	if err != nil {
		sendRideMathError(c, err)
		return
	}

	cycle, err := rc.cycles.Active()
	if err != nil {
		utils.SendInternalError(c, "Failed to resolve active cycle")
		return
	}

	ride := models.Ride{
		ID:                uuid.New().String(),
		UserID:            user.ID,
		TankCycleID:       cycle.ID,
		Timestamp:         req.Timestamp,
		DistanceKm:        distance,
		ConsumptionL100Km: consumption,
		FuelLiters:        fuel,
	}
	if err := rc.rides.Create(&ride); err != nil {
		utils.SendInternalError(c, "Failed to save ride")
		return
	}

	ride.User = *user
	c.JSON(http.StatusCreated, ride)
}
