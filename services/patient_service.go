package services

import (
	"errors"
	"net/http"

	"clinic_back_end_go/db"
	"clinic_back_end_go/models"

	"github.com/gin-gonic/gin"
)

func GetPatientById(c *gin.Context, store PatientStore) {
	patientId, ok := paramID(c, "patientId")
	if !ok {
		return
	}

	patient, err := store.GetPatient(c.Request.Context(), patientId)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			notFound(c, "Patient")
		} else {
			respondStorageFault(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, patient)
}

func GetPatients(c *gin.Context, store PatientStore) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	patients, err := store.ListPatients(c.Request.Context(), skip, limit)
	if err != nil {
		respondStorageFault(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func CreatePatient(c *gin.Context, store PatientStore) {
	var in models.PatientCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	patient, err := store.CreatePatient(c.Request.Context(), in)
	if err != nil {
		respondStorageFault(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func UpdatePatient(c *gin.Context, store PatientStore) {
	patientId, ok := paramID(c, "patientId")
	if !ok {
		return
	}

	var upd models.PatientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondBindError(c, err)
		return
	}
	if errs := upd.Validate(); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	patient, err := store.UpdatePatient(c.Request.Context(), patientId, upd)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			notFound(c, "Patient")
		} else {
			respondStorageFault(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, patient)
}

func DeletePatient(c *gin.Context, store PatientStore) {
	patientId, ok := paramID(c, "patientId")
	if !ok {
		return
	}

	existed, err := store.DeletePatient(c.Request.Context(), patientId)
	if err != nil {
		respondStorageFault(c, err)
		return
	}
	if !existed {
		notFound(c, "Patient")
		return
	}
	c.Status(http.StatusNoContent)
}
