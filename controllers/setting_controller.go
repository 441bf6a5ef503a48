package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fueltracker-api/repositories"
	"fueltracker-api/utils"
)

type SettingController struct {
	settings *repositories.SettingRepository
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{settings: repositories.NewSettingRepository(db)}
}

type UpdateSettingsRequest struct {
	Currency  string  `json:"currency" binding:"required"`
	FuelPrice float64 `json:"fuel_price" binding:"required,gt=0"`
}

func (sc *SettingController) GetSettings(c *gin.Context) {
	setting, err := sc.settings.Get()
	if err != nil {
		utils.SendInternalError(c, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (sc *SettingController) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidCurrency(req.Currency) {
		utils.SendValidationError(c, "Currency must be between 1 and 10 characters")
		return
	}

	setting, err := sc.settings.Update(req.Currency, req.FuelPrice)
	if err != nil {
		utils.SendInternalError(c, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, setting)
}
