package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic_back_end_go/models"

	"github.com/jackc/pgx/v4"
)

const appointmentColumns = "a.id, a.patient_id, a.appointment_date, a.description, a.status, a.created_at, a.updated_at"

const appointmentJoinQuery = `SELECT ` + appointmentColumns + `,
	p.id, p.first_name, p.last_name, p.date_of_birth, p.gender, p.phone_number, p.email, p.address, p.created_at, p.updated_at
	FROM appointments a
	JOIN patients p ON a.patient_id = p.id`

func scanAppointmentWithPatient(row pgx.Row) (*models.Appointment, error) {
	var a models.Appointment
	var p models.Patient
	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.AppointmentDate,
		&a.Description,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.DateOfBirth,
		&p.Gender,
		&p.PhoneNumber,
		&p.Email,
		&p.Address,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Patient = &p
	return &a, nil
}

func (s *Store) GetAppointment(ctx context.Context, id int) (*models.Appointment, error) {
	row := s.pool.QueryRow(ctx, appointmentJoinQuery+" WHERE a.id = $1", id)
	a, err := scanAppointmentWithPatient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment %d: %w", id, err)
	}
	return a, nil
}

func (s *Store) ListAppointments(ctx context.Context, skip, limit int) ([]models.Appointment, error) {
	rows, err := s.pool.Query(ctx, appointmentJoinQuery+" ORDER BY a.id ASC OFFSET $1 LIMIT $2", skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointmentWithPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("list appointments: %w", err)
		}
		appointments = append(appointments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// CreateAppointment inserts the row as given. The caller is responsible
// for resolving patient_id first; this operation does not re-check the
// reference and the returned record carries no embedded patient.
func (s *Store) CreateAppointment(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error) {
	var a models.Appointment
	err := s.pool.QueryRow(ctx,
		`INSERT INTO appointments (patient_id, appointment_date, description, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, patient_id, appointment_date, description, status, created_at, updated_at`,
		in.PatientID, in.AppointmentDate, in.Description, in.StatusOrDefault()).Scan(
		&a.ID, &a.PatientID, &a.AppointmentDate, &a.Description, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &a, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id int, upd models.AppointmentUpdate) (*models.Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(a)
	now := time.Now().UTC()
	a.UpdatedAt = &now

	_, err = s.pool.Exec(ctx,
		`UPDATE appointments
		 SET appointment_date = $1, description = $2, status = $3, updated_at = $4
		 WHERE id = $5`,
		a.AppointmentDate, a.Description, a.Status, a.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("update appointment %d: %w", id, err)
	}
	return s.GetAppointment(ctx, id)
}

// DeleteAppointment is a soft delete. The row stays in place with
// status set to cancelled and a fresh updated_at; it remains readable
// by id and keeps showing up in listings.
func (s *Store) DeleteAppointment(ctx context.Context, id int) (*models.Appointment, error) {
	now := time.Now().UTC()
	var updatedID int
	err := s.pool.QueryRow(ctx,
		"UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3 RETURNING id",
		models.StatusCancelled, now, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cancel appointment %d: %w", id, err)
	}
	return s.GetAppointment(ctx, id)
}
