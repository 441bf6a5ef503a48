package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fueltracker-api/services"
	"fueltracker-api/utils"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// sendRideMathError maps reconciler failures onto the error taxonomy.
func sendRideMathError(c *gin.Context, err error) {
	var inconsistent *services.InconsistentDataError
	switch {
	case errors.Is(err, services.ErrInsufficientData):
		utils.SendError(c, http.StatusBadRequest, utils.KindInsufficientData, err.Error())
	case errors.As(err, &inconsistent):
		utils.SendError(c, http.StatusBadRequest, utils.KindInconsistentData, err.Error())
	case errors.Is(err, services.ErrZeroDistance):
		utils.SendError(c, http.StatusBadRequest, utils.KindDivisionByZero, err.Error())
	default:
		utils.SendInternalError(c, "Failed to process ride data")
	}
}
