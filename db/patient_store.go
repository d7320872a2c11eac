package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic_back_end_go/models"

	"github.com/jackc/pgx/v4"
)

const patientColumns = "id, first_name, last_name, date_of_birth, gender, phone_number, email, address, created_at, updated_at"

func scanPatient(row pgx.Row) (*models.Patient, error) {
	var p models.Patient
	err := row.Scan(
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
	return &p, nil
}

func (s *Store) GetPatient(ctx context.Context, id int) (*models.Patient, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+patientColumns+" FROM patients WHERE id = $1", id)
	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return p, nil
}

// ListPatients returns patients in insertion order. skip and limit are
// assumed non negative, the handlers reject anything else before the
// store is reached.
func (s *Store) ListPatients(ctx context.Context, skip, limit int) ([]models.Patient, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+patientColumns+" FROM patients ORDER BY id ASC OFFSET $1 LIMIT $2", skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("list patients: %w", err)
		}
		patients = append(patients, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *Store) CreatePatient(ctx context.Context, in models.PatientCreate) (*models.Patient, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO patients (first_name, last_name, date_of_birth, gender, phone_number, email, address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+patientColumns,
		in.FirstName, in.LastName, in.DateOfBirth, in.Gender, in.PhoneNumber, in.Email, in.Address)
	p, err := scanPatient(row)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

// UpdatePatient loads the row, merges the set fields into it and writes
// the result back. Absent rows return ErrNotFound with no side effects.
func (s *Store) UpdatePatient(ctx context.Context, id int, upd models.PatientUpdate) (*models.Patient, error) {
	p, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(p)
	now := time.Now().UTC()
	p.UpdatedAt = &now

	row := s.pool.QueryRow(ctx,
		`UPDATE patients
		 SET first_name = $1, last_name = $2, date_of_birth = $3, gender = $4,
		     phone_number = $5, email = $6, address = $7, updated_at = $8
		 WHERE id = $9
		 RETURNING `+patientColumns,
		p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.PhoneNumber, p.Email, p.Address, p.UpdatedAt, id)
	updated, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update patient %d: %w", id, err)
	}
	return updated, nil
}

// DeletePatient removes the row for good. The appointments foreign key
// is declared ON DELETE CASCADE, so owned appointments go with it.
// The returned bool reports whether a row existed.
func (s *Store) DeletePatient(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM patients WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete patient %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
