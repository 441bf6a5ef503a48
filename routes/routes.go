package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fueltracker-api/controllers"
	"fueltracker-api/middleware"
	"fueltracker-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, authService *services.AuthService, emailService *services.EmailService) {
	// Controllers
	settingController := controllers.NewSettingController(db)
	userController := controllers.NewUserController(db, authService)
	rideController := controllers.NewRideController(db)
	cycleController := controllers.NewCycleController(db, emailService)
	statsController := controllers.NewStatsController(db)
	adminController := controllers.NewAdminController(db, authService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/settings", settingController.GetSettings)
		api.PUT("/settings", settingController.UpdateSettings)

		api.GET("/users", userController.GetUsers)
		api.POST("/users", userController.CreateUser)

		api.POST("/rides", rideController.CreateRide)

		api.GET("/cycles", cycleController.GetCycles)
		api.POST("/cycles/close", cycleController.CloseCycle)

		api.GET("/stats", statsController.GetStats)

		api.POST("/admin/login", adminController.Login)

		// Admin-only routes
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(authService))
		{
			admin.POST("/password", adminController.ChangePassword)
			admin.GET("/users/:id/rides", adminController.GetUserRides)
			admin.PUT("/users/:id", adminController.UpdateUser)
			admin.DELETE("/users/:id", adminController.DeactivateUser)
			admin.PUT("/rides/:id", adminController.UpdateRide)
			admin.DELETE("/rides/:id", adminController.DeleteRide)
			admin.DELETE("/cycles/:id", adminController.DeleteCycle)
		}
	}
}
