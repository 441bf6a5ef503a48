package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fueltracker-api/models"
	"fueltracker-api/repositories"
	"fueltracker-api/services"
	"fueltracker-api/utils"
)

type UserController struct {
	users *repositories.UserRepository
	auth  *services.AuthService
}

func NewUserController(db *gorm.DB, auth *services.AuthService) *UserController {
	return &UserController{
		users: repositories.NewUserRepository(db),
		auth:  auth,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	Color    string `json:"color" binding:"required"`
	Password string `json:"password" binding:"required,min=1"`
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.users.ListActive()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidHexColor(req.Color) {
		utils.SendValidationError(c, "Color must be a hex code like #ff8800")
		return
	}

	taken, err := uc.users.ActiveNameTaken(req.Name, "")
	if err != nil {
		utils.SendInternalError(c, "Failed to check user name")
		return
	}
	if taken {
		utils.SendError(c, http.StatusConflict, utils.KindDuplicateName, "An active user with that name already exists")
		return
	}

	passwordHash, err := uc.auth.HashPassword(req.Password)
	if err != nil {
		utils.SendInternalError(c, "Failed to hash password")
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Color:        req.Color,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err := uc.users.Create(&user); err != nil {
		utils.SendInternalError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}
