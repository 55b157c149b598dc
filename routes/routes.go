package routes

import (
	"globetrek/config"
	"globetrek/controllers"
	"globetrek/middleware"
	"globetrek/models"
	"globetrek/services"
	"globetrek/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter создаёт gin.Engine и регистрирует все маршруты.
// Хранилище и шина должны быть установлены через utils до вызова.
func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware ДО роутов
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://globetrek-holidays.vercel.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	cfg := config.LoadConfig()
	authService := services.NewAuthService(
		utils.GetStore(),
		utils.GetBus(),
		&services.DemoVerifier{AdminEmail: cfg.AdminEmail, AdminPassword: cfg.AdminPassword},
		cfg.JWTSecret,
	)

	authController := controllers.NewAuthController(authService)
	destinationController := controllers.NewDestinationController()
	bookingController := controllers.NewBookingController()
	feedbackController := controllers.NewFeedbackController()
	queryController := controllers.NewQueryController()
	eventsController := controllers.NewEventsController()

	authRequired := middleware.AuthMiddleware(authService, cfg.JWTSecret)

	// Публичные маршруты
	r.POST("/auth/login", authController.Login)
	r.POST("/auth/signup", authController.Signup)
	r.POST("/auth/logout", authRequired, authController.Logout)
	r.GET("/destinations", destinationController.List)
	r.GET("/destinations/:id", destinationController.Get)
	r.POST("/contact", queryController.Create)
	r.GET("/events", eventsController.Stream)

	// Отзывы закрыты для гостей, но доступны любой роли
	r.POST("/feedback", authRequired, feedbackController.Create)

	// Пользовательский дашборд
	userGroup := r.Group("/user", authRequired, middleware.RequireUserType(models.UserTypeUser))
	{
		userGroup.POST("/bookings", bookingController.Create)
		userGroup.GET("/bookings", bookingController.List)
		userGroup.PUT("/bookings/:id", bookingController.Update)
		userGroup.PATCH("/bookings/:id/status", bookingController.UpdateStatus)
		userGroup.DELETE("/bookings/:id", bookingController.Delete)
	}

	// Админка
	SetupAdminRoutes(r, authRequired, destinationController, bookingController, feedbackController, queryController)

	// Health-check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
