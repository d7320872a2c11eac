package routes

import (
	"clinic_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupPatientRoutes(r *gin.Engine, store services.PatientStore) {
	patients := r.Group("/api/patients")

	patients.POST("/", func(c *gin.Context) {
		services.CreatePatient(c, store)
	})

	patients.GET("/", func(c *gin.Context) {
		services.GetPatients(c, store)
	})

	patients.GET("/:patientId", func(c *gin.Context) {
		services.GetPatientById(c, store)
	})

	patients.PUT("/:patientId", func(c *gin.Context) {
		services.UpdatePatient(c, store)
	})

	patients.DELETE("/:patientId", func(c *gin.Context) {
		services.DeletePatient(c, store)
	})
}
