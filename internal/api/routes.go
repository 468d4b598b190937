package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cureon/internal/api/handlers"
	"cureon/internal/middleware"
	"cureon/internal/models"
	"cureon/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	authHandler := handlers.NewAuthHandler(services.User)
	doctorHandler := handlers.NewDoctorHandler(services.User)
	apptHandler := handlers.NewAppointmentHandler(services.Appointment)
	medicineHandler := handlers.NewMedicineHandler(services.Medicine)
	orderHandler := handlers.NewOrderHandler(services.Order)
	prescriptionHandler := handlers.NewPrescriptionHandler(services.Prescription)
	signalingHandler := handlers.NewSignalingHandler(services.Relay)

	api := r.Group("/api")

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
		})
	})

	// Public routes
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Medicine catalog is public; stock management below is not
		api.GET("/medicines", medicineHandler.List)
		api.GET("/medicines/:id", medicineHandler.Get)
	}

	// Signaling relay. Rooms are scoped by token secrecy alone; the room
	// token is handed out with the appointment.
	r.GET("/ws", signalingHandler.Call)
	r.GET("/ws/chat", signalingHandler.Chat)

	// Authenticated routes
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.GET("/doctors", doctorHandler.ListDoctors)
		authorized.GET("/doctors/:id", doctorHandler.GetDoctor)

		appointments := authorized.Group("/appointments")
		{
			appointments.POST("", apptHandler.Book)
			appointments.GET("", apptHandler.List)
			appointments.GET("/:id", apptHandler.Get)
			appointments.POST("/:id/cancel", apptHandler.Cancel)
			appointments.POST("/:id/complete", middleware.RequireRole(string(models.RoleDoctor)), apptHandler.Complete)
		}

		orders := authorized.Group("/orders")
		{
			orders.POST("", orderHandler.Place)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.POST("/:id/cancel", orderHandler.Cancel)
			orders.POST("/:id/deliver", middleware.RequireRole(string(models.RolePharmacy)), orderHandler.Deliver)
		}

		prescriptions := authorized.Group("/prescriptions")
		{
			prescriptions.POST("", middleware.RequireRole(string(models.RoleDoctor)), prescriptionHandler.Issue)
			prescriptions.GET("", prescriptionHandler.List)
			prescriptions.GET("/:id", prescriptionHandler.Get)
			prescriptions.POST("/:id/dispense", middleware.RequireRole(string(models.RolePharmacy)), prescriptionHandler.Dispense)
		}

		pharmacy := authorized.Group("/medicines")
		pharmacy.Use(middleware.RequireRole(string(models.RolePharmacy)))
		{
			pharmacy.POST("", medicineHandler.Create)
			pharmacy.PUT("/:id/restock", medicineHandler.Restock)
			pharmacy.PUT("/:id/price", medicineHandler.SetPrice)
		}
	}
}
