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

type AdminController struct {
	admins *repositories.AdminRepository
	users  *repositories.UserRepository
	rides  *repositories.RideRepository
	cycles *repositories.CycleRepository
	auth   *services.AuthService
}

func NewAdminController(db *gorm.DB, auth *services.AuthService) *AdminController {
	return &AdminController{
		admins: repositories.NewAdminRepository(db),
		users:  repositories.NewUserRepository(db),
		rides:  repositories.NewRideRepository(db),
		cycles: repositories.NewCycleRepository(db),
		auth:   auth,
	}
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required,min=1"`
}

type AdminTokenResponse struct {
	AccessToken        string `json:"access_token"`
	TokenType          string `json:"token_type"`
	MustChangePassword bool   `json:"must_change_password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,min=1"`
	NewPassword string `json:"new_password" binding:"required,min=1"`
}

type UpdateRideRequest struct {
	DistanceKm        *float64 `json:"distance_km" binding:"omitempty,gt=0"`
	ConsumptionL100Km *float64 `json:"consumption_l100km" binding:"omitempty,gt=0"`
	FuelLiters        *float64 `json:"fuel_liters" binding:"omitempty,gt=0"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=50"`
	Color    *string `json:"color"`
	Password *string `json:"password" binding:"omitempty,min=1"`
}

func (ac *AdminController) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	admin, err := ac.admins.Get()
	if err != nil {
		utils.SendInternalError(c, "Failed to load admin account")
		return
	}
	if !ac.auth.CheckPassword(req.Password, admin.PasswordHash) {
		utils.SendError(c, http.StatusUnauthorized, utils.KindUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.auth.IssueToken(services.AdminSubject)
	if err != nil {
		utils.SendInternalError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, AdminTokenResponse{
		AccessToken:        token,
		TokenType:          "bearer",
		MustChangePassword: !admin.PasswordChanged,
	})
}

func (ac *AdminController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	admin, err := ac.admins.Get()
	if err != nil {
		utils.SendInternalError(c, "Failed to load admin account")
		return
	}
	if !ac.auth.CheckPassword(req.OldPassword, admin.PasswordHash) {
		utils.SendError(c, http.StatusUnauthorized, utils.KindUnauthorized, "Old password is incorrect")
		return
	}

	passwordHash, err := ac.auth.HashPassword(req.NewPassword)
	if err != nil {
		utils.SendInternalError(c, "Failed to hash password")
		return
	}
	if err := ac.admins.UpdatePassword(admin, passwordHash); err != nil {
		utils.SendInternalError(c, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// GetUserRides lists one user's rides within a cycle (the active one when
// ?cycle_id= is omitted), newest first.
func (ac *AdminController) GetUserRides(c *gin.Context) {
	userID := c.Param("id")
	if _, err := ac.users.FindByID(userID); err != nil {
		if isNotFound(err) {
			utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "User not found")
		} else {
			utils.SendInternalError(c, "Failed to load user")
		}
		return
	}

	var cycle *models.TankCycle
	var err error
	if cycleID := c.Query("cycle_id"); cycleID != "" {
		cycle, err = ac.cycles.FindByID(cycleID)
		if err != nil {
			if isNotFound(err) {
				utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "Cycle not found")
			} else {
				utils.SendInternalError(c, "Failed to load cycle")
			}
			return
		}
	} else {
		cycle, err = ac.cycles.Active()
		if err != nil {
			utils.SendInternalError(c, "Failed to resolve active cycle")
			return
		}
	}

	rides, err := ac.rides.ListByUserAndCycle(userID, cycle.ID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch rides")
		return
	}
	c.JSON(http.StatusOK, rides)
}

// UpdateRide replaces a ride's measurements. The supplied fields form the
// new measurement set and go through the reconciler again, so any two
// suffice and the stored triple stays consistent.
func (ac *AdminController) UpdateRide(c *gin.Context) {
	var req UpdateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	ride, err := ac.rides.FindByID(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "Ride not found")
		} else {
			utils.SendInternalError(c, "Failed to load ride")
		}
		return
	}

	distance, consumption, fuel, err := services.ReconcileRide(req.DistanceKm, req.ConsumptionL100Km, req.FuelLiters)
	if err != nil {
		sendRideMathError(c, err)
		return
	}

	ride.DistanceKm = distance
	ride.ConsumptionL100Km = consumption
	ride.FuelLiters = fuel
	if err := ac.rides.Save(ride); err != nil {
		utils.SendInternalError(c, "Failed to update ride")
		return
	}

	c.JSON(http.StatusOK, ride)
}

func (ac *AdminController) DeleteRide(c *gin.Context) {
	rideID := c.Param("id")
	if _, err := ac.rides.FindByID(rideID); err != nil {
		if isNotFound(err) {
			utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "Ride not found")
		} else {
			utils.SendInternalError(c, "Failed to load ride")
		}
		return
	}

	if err := ac.rides.Delete(rideID); err != nil {
		utils.SendInternalError(c, "Failed to delete ride")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ride deleted successfully"})
}

// DeleteCycle removes an inactive cycle and its rides. The active cycle
// cannot be deleted.
func (ac *AdminController) DeleteCycle(c *gin.Context) {
	cycle, err := ac.cycles.FindByID(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "Cycle not found")
		} else {
			utils.SendInternalError(c, "Failed to load cycle")
		}
		return
	}
	if cycle.IsActive {
		utils.SendError(c, http.StatusConflict, utils.KindCannotDeleteActive, "The active cycle cannot be deleted")
		return
	}

	if err := ac.cycles.Delete(cycle.ID); err != nil {
		utils.SendInternalError(c, "Failed to delete cycle")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cycle deleted successfully"})
}

func (ac *AdminController) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	user, err := ac.users.FindByID(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "User not found")
		} else {
			utils.SendInternalError(c, "Failed to load user")
		}
		return
	}

	if req.Name != nil && *req.Name != user.Name {
		taken, err := ac.users.ActiveNameTaken(*req.Name, user.ID)
		if err != nil {
			utils.SendInternalError(c, "Failed to check user name")
			return
		}
		if taken {
			utils.SendError(c, http.StatusConflict, utils.KindDuplicateName, "An active user with that name already exists")
			return
		}
		user.Name = *req.Name
	}
	if req.Color != nil {
		if !utils.IsValidHexColor(*req.Color) {
			utils.SendValidationError(c, "Color must be a hex code like #ff8800")
			return
		}
		user.Color = *req.Color
	}
	if req.Password != nil {
		passwordHash, err := ac.auth.HashPassword(*req.Password)
		if err != nil {
			utils.SendInternalError(c, "Failed to hash password")
			return
		}
		user.PasswordHash = passwordHash
	}

	if err := ac.users.Save(user); err != nil {
		utils.SendInternalError(c, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeactivateUser soft-deletes a user. Their historic rides keep their
// attribution and still count in past cycle stats.
func (ac *AdminController) DeactivateUser(c *gin.Context) {
	user, err := ac.users.FindByID(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			utils.SendError(c, http.StatusNotFound, utils.KindNotFound, "User not found")
		} else {
			utils.SendInternalError(c, "Failed to load user")
		}
		return
	}

	if err := ac.users.Deactivate(user); err != nil {
		utils.SendInternalError(c, "Failed to deactivate user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated successfully"})
}
