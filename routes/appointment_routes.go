package routes

import (
	"clinic_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupAppointmentRoutes(r *gin.Engine, store services.AppointmentStore) {
	appointments := r.Group("/api/appointments")

	appointments.POST("/", func(c *gin.Context) {
		services.CreateAppointment(c, store)
	})

	appointments.GET("/", func(c *gin.Context) {
		services.GetAppointments(c, store)
	})

	appointments.GET("/:appointmentId", func(c *gin.Context) {
		services.GetAppointmentById(c, store)
	})

	appointments.PUT("/:appointmentId", func(c *gin.Context) {
		services.UpdateAppointment(c, store)
	})

	appointments.DELETE("/:appointmentId", func(c *gin.Context) {
		services.DeleteAppointment(c, store)
	})
}
