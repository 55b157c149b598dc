package routes

import (
	"globetrek/controllers"
	adminctl "globetrek/controllers/admin"
	"globetrek/middleware"
	"globetrek/models"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes регистрирует маршруты админки (роль admin обязательна)
func SetupAdminRoutes(
	r *gin.Engine,
	authRequired gin.HandlerFunc,
	destinationController *controllers.DestinationController,
	bookingController *controllers.BookingController,
	feedbackController *controllers.FeedbackController,
	queryController *controllers.QueryController,
) {
	dashboardController := adminctl.NewDashboardController()

	adminGroup := r.Group("/admin", authRequired, middleware.RequireUserType(models.UserTypeAdmin))
	{
		adminGroup.POST("/destinations", destinationController.Create)
		adminGroup.PUT("/destinations/:id", destinationController.Update)
		adminGroup.DELETE("/destinations/:id", destinationController.Delete)

		adminGroup.GET("/bookings", bookingController.List)
		adminGroup.PATCH("/bookings/:id/status", bookingController.UpdateStatus)
		adminGroup.DELETE("/bookings/:id", bookingController.Delete)

		adminGroup.GET("/feedbacks", feedbackController.List)
		adminGroup.DELETE("/feedbacks/:id", feedbackController.Delete)

		adminGroup.GET("/queries", queryController.List)
		adminGroup.POST("/queries/:id/reply", queryController.Reply)
		adminGroup.DELETE("/queries/:id", queryController.Delete)

		adminGroup.GET("/stats", dashboardController.Stats)
		adminGroup.GET("/reports", dashboardController.Reports)
	}
}
