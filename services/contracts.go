package services

import (
	"context"

	"clinic_back_end_go/models"
)

// PatientStore is the slice of the storage handle the patient handlers
// depend on. *db.Store satisfies it; tests substitute a fake.
type PatientStore interface {
	GetPatient(ctx context.Context, id int) (*models.Patient, error)
	ListPatients(ctx context.Context, skip, limit int) ([]models.Patient, error)
	CreatePatient(ctx context.Context, in models.PatientCreate) (*models.Patient, error)
	UpdatePatient(ctx context.Context, id int, upd models.PatientUpdate) (*models.Patient, error)
	DeletePatient(ctx context.Context, id int) (bool, error)
}

// AppointmentStore includes GetPatient because the create handler must
// resolve the referenced patient before inserting.
type AppointmentStore interface {
	GetPatient(ctx context.Context, id int) (*models.Patient, error)
	GetAppointment(ctx context.Context, id int) (*models.Appointment, error)
	ListAppointments(ctx context.Context, skip, limit int) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id int, upd models.AppointmentUpdate) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id int) (*models.Appointment, error)
}
