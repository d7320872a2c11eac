package main

import (
	"net/http"
	"os"
	"time"

	"clinic_back_end_go/db"
	"clinic_back_end_go/routes"
	"clinic_back_end_go/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	services.SetupValidation()

	// Initialize database
	store, err := db.InitDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer store.Close()

	r := gin.New()
	r.Use(services.RequestLogger())
	r.Use(services.Recovery())

	config := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}
	r.Use(cors.New(config))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":      "Welcome to the Clinic Management API",
			"patients":     "/api/patients",
			"appointments": "/api/appointments",
		})
	})

	// Initialize routes
	routes.SetupPatientRoutes(r, store)
	routes.SetupAppointmentRoutes(r, store)

	// Start server
	r.Run(":8000")
}
