package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fueltracker-api/models"
	"fueltracker-api/repositories"
	"fueltracker-api/services"
	"fueltracker-api/utils"
)

type StatsController struct {
	cycles   *repositories.CycleRepository
	rides    *repositories.RideRepository
	users    *repositories.UserRepository
	settings *repositories.SettingRepository
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		cycles:   repositories.NewCycleRepository(db),
		rides:    repositories.NewRideRepository(db),
		users:    repositories.NewUserRepository(db),
		settings: repositories.NewSettingRepository(db),
	}
}

// GetStats aggregates one cycle: the one named by ?cycle_id=, or the
// active one when omitted.
func (sc *StatsController) GetStats(c *gin.Context) {
	var cycle *models.TankCycle
	var err error

	if cycleID := c.Query("cycle_id"); cycleID != "" {
		cycle, err = sc.cycles.FindByID(cycleID)
		if err != nil {
			if isNotFound(err) {
				utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "Cycle not found")
			} else {
				utils.SendInternalError(c, "Failed to load cycle")
			}
			return
		}
	} else {
		cycle, err = sc.cycles.Active()
		if err != nil {
			utils.SendInternalError(c, "Failed to resolve active cycle")
			return
		}
	}

	rides, err := sc.rides.ListByCycle(cycle.ID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch rides")
		return
	}
	users, err := sc.users.ListAll()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch users")
		return
	}
	setting, err := sc.settings.Get()
	if err != nil {
		utils.SendInternalError(c, "Failed to load settings")
		return
	}

	stats := services.AggregateCycle(rides, users, setting.FuelPrice)
	stats.CycleID = cycle.ID
	stats.IsActive = cycle.IsActive

	c.JSON(http.StatusOK, stats)
}
