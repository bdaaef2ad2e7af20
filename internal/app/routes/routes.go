package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peerapat/gradlink/internal/app/controllers"
	"github.com/peerapat/gradlink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	directoryController *controllers.DirectoryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Everything else requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		account := authenticated.Group("/account")
		{
			account.POST("/role", accountController.AssignRole)
			account.GET("/lifecycle", accountController.Lifecycle)
			account.GET("/me", accountController.Me)
		}

		profiles := authenticated.Group("/profiles")
		{
			profiles.POST("/student", profileController.SubmitStudent)
			profiles.POST("/graduate", profileController.SubmitGraduate)
		}

		directory := authenticated.Group("/directory")
		{
			directory.GET("/students", directoryController.ListStudents)
			directory.GET("/graduates", directoryController.ListGraduates)
			directory.GET("/graduates/by-faculty", directoryController.ListGraduatesByFaculty)
			directory.GET("/graduates/by-company", directoryController.ListGraduatesByCompany)
			directory.GET("/graduates/by-career", directoryController.ListGraduatesByCareer)
			directory.GET("/faculties", directoryController.ListFaculties)
			directory.GET("/companies", directoryController.ListCompanies)
			directory.GET("/careers", directoryController.ListCareers)
		}
	}
}
