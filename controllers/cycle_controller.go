package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fueltracker-api/models"
	"fueltracker-api/repositories"
	"fueltracker-api/services"
	"fueltracker-api/utils"
)

type CycleController struct {
	cycles       *repositories.CycleRepository
	rides        *repositories.RideRepository
	users        *repositories.UserRepository
	settings     *repositories.SettingRepository
	emailService *services.EmailService
}

func NewCycleController(db *gorm.DB, emailService *services.EmailService) *CycleController {
	return &CycleController{
		cycles:       repositories.NewCycleRepository(db),
		rides:        repositories.NewRideRepository(db),
		users:        repositories.NewUserRepository(db),
		settings:     repositories.NewSettingRepository(db),
		emailService: emailService,
	}
}

func (cc *CycleController) GetCycles(c *gin.Context) {
	cycles, err := cc.cycles.List()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch cycles")
		return
	}
	c.JSON(http.StatusOK, cycles)
}

// CloseCycle ends the active cycle and opens a fresh one atomically.
// Responds with the closed cycle; rides logged before the close stay
// attributed to it.
func (cc *CycleController) CloseCycle(c *gin.Context) {
	closed, err := cc.cycles.Close()
	if err != nil {
		if errors.Is(err, repositories.ErrCycleAlreadyClosed) {
			utils.SendError(c, http.StatusConflict, utils.KindConflict, "The active cycle was closed by another request")
			return
		}
		utils.SendInternalError(c, "Failed to close cycle")
		return
	}

	if cc.emailService != nil && cc.emailService.Enabled() {
		go cc.mailSummary(*closed)
	}

	c.JSON(http.StatusOK, closed)
}

// mailSummary aggregates the closed cycle and mails the result.
// Fire-and-forget: failures are logged, never surfaced to the caller.
func (cc *CycleController) mailSummary(cycle models.TankCycle) {
	rides, err := cc.rides.ListByCycle(cycle.ID)
	if err != nil {
		log.Printf("cycle summary: failed to load rides: %v", err)
		return
	}
	users, err := cc.users.ListAll()
	if err != nil {
		log.Printf("cycle summary: failed to load users: %v", err)
		return
	}
	setting, err := cc.settings.Get()
	if err != nil {
		log.Printf("cycle summary: failed to load settings: %v", err)
		return
	}

	stats := services.AggregateCycle(rides, users, setting.FuelPrice)
	stats.CycleID = cycle.ID
	stats.IsActive = false

	if err := cc.emailService.SendCycleSummary(stats, setting.Currency); err != nil {
		log.Printf("cycle summary: %v", err)
	}
}
