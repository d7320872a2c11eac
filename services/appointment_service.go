package services

import (
	"errors"
	"fmt"
	"net/http"

	"clinic_back_end_go/db"
	"clinic_back_end_go/models"

	"github.com/gin-gonic/gin"
)

func GetAppointmentById(c *gin.Context, store AppointmentStore) {
	appointmentId, ok := paramID(c, "appointmentId")
	if !ok {
		return
	}

	appointment, err := store.GetAppointment(c.Request.Context(), appointmentId)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			notFound(c, "Appointment")
		} else {
			respondStorageFault(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func GetAppointments(c *gin.Context, store AppointmentStore) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	appointments, err := store.ListAppointments(c.Request.Context(), skip, limit)
	if err != nil {
		respondStorageFault(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment resolves the referenced patient before inserting.
// An unknown patient_id is answered with a 404 naming the id, and the
// store is never asked to insert in that case.
func CreateAppointment(c *gin.Context, store AppointmentStore) {
	var in models.AppointmentCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	patient, err := store.GetPatient(c.Request.Context(), in.PatientID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Patient with id %d not found", in.PatientID)})
		} else {
			respondStorageFault(c, err)
		}
		return
	}

	appointment, err := store.CreateAppointment(c.Request.Context(), in)
	if err != nil {
		respondStorageFault(c, err)
		return
	}
	appointment.Patient = patient
	c.JSON(http.StatusCreated, appointment)
}

func UpdateAppointment(c *gin.Context, store AppointmentStore) {
	appointmentId, ok := paramID(c, "appointmentId")
	if !ok {
		return
	}

	var upd models.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondBindError(c, err)
		return
	}
	if errs := upd.Validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	appointment, err := store.UpdateAppointment(c.Request.Context(), appointmentId, upd)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			notFound(c, "Appointment")
		} else {
			respondStorageFault(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment cancels rather than removes. The handler answers
// 200 with a confirmation body, matching the soft delete semantics.
func DeleteAppointment(c *gin.Context, store AppointmentStore) {
	appointmentId, ok := paramID(c, "appointmentId")
	if !ok {
		return
	}

	_, err := store.DeleteAppointment(c.Request.Context(), appointmentId)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			notFound(c, "Appointment")
		} else {
			respondStorageFault(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Appointment cancelled successfully"})
}
