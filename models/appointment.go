package models

import "time"

// Recognized appointment status values. The column is free-form text;
// these are the lifecycle states the API itself assigns or expects.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment is the persisted appointment record. Patient carries the
// owning patient on reads, a denormalized convenience for API clients.
type Appointment struct {
	ID              int        `json:"id"`
	PatientID       int        `json:"patient_id"`
	AppointmentDate time.Time  `json:"appointment_date"`
	Description     *string    `json:"description"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	Patient         *Patient   `json:"patient,omitempty"`
}

type AppointmentCreate struct {
	PatientID       int       `json:"patient_id" binding:"required"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Description     *string   `json:"description"`
	Status          *string   `json:"status" binding:"omitempty,max=20"`
}

// StatusOrDefault returns the requested status, falling back to
// "scheduled" when the field was omitted.
func (a *AppointmentCreate) StatusOrDefault() string {
	if a.Status == nil {
		return StatusScheduled
	}
	return *a.Status
}

// AppointmentUpdate is a partial patch. patient_id is immutable after
// creation and deliberately has no field here.
type AppointmentUpdate struct {
	AppointmentDate Optional[time.Time] `json:"appointment_date"`
	Description     Optional[string]    `json:"description"`
	Status          Optional[string]    `json:"status"`
}

func (u *AppointmentUpdate) Validate() []FieldError {
	var errs []FieldError
	if u.AppointmentDate.Set && !u.AppointmentDate.Valid {
		errs = append(errs, FieldError{"appointment_date", "must not be null"})
	}
	if u.Status.Set {
		if !u.Status.Valid {
			errs = append(errs, FieldError{"status", "must not be null"})
		} else if len(u.Status.Value) > 20 {
			errs = append(errs, FieldError{"status", "must be at most 20 characters"})
		}
	}
	return errs
}

func (u *AppointmentUpdate) Apply(a *Appointment) {
	if u.AppointmentDate.Set && u.AppointmentDate.Valid {
		a.AppointmentDate = u.AppointmentDate.Value
	}
	if u.Description.Set {
		a.Description = optionalString(u.Description)
	}
	if u.Status.Set && u.Status.Valid {
		a.Status = u.Status.Value
	}
}
