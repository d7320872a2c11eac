package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"clinic_back_end_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a reachable PostgreSQL instance configured through
// the usual DATABASE_* variables and are skipped otherwise.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("DATABASE_HOST") == "" {
		t.Skip("DATABASE_HOST not set, skipping database tests")
	}

	store, err := InitDatabase()
	require.NoError(t, err)

	truncate := func() {
		_, err := store.pool.Exec(context.Background(), "TRUNCATE appointments, patients RESTART IDENTITY CASCADE")
		require.NoError(t, err)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		store.Close()
	})
	return store
}

func testPatientCreate() models.PatientCreate {
	email := "john.doe@example.com"
	return models.PatientCreate{
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: models.NewDate(1990, time.January, 1),
		Email:       &email,
	}
}

func TestPatientRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreatePatient(ctx, testPatientCreate())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)

	got, err := store.GetPatient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "1990-01-01", got.DateOfBirth.Format("2006-01-02"))
	require.NotNil(t, got.Email)
	assert.Equal(t, "john.doe@example.com", *got.Email)
	assert.Nil(t, got.Gender)
	assert.Nil(t, got.UpdatedAt)
}

func TestPatientNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetPatient(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpdatePatient(ctx, 12345, models.PatientUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)

	existed, err := store.DeletePatient(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestPatientPartialUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreatePatient(ctx, testPatientCreate())
	require.NoError(t, err)

	var upd models.PatientUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"first_name": "Jane", "email": null}`), &upd))

	updated, err := store.UpdatePatient(ctx, created.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName)
	assert.Nil(t, updated.Email)
	require.NotNil(t, updated.UpdatedAt)

	// An empty patch keeps everything but moves updated_at forward.
	first := *updated.UpdatedAt
	again, err := store.UpdatePatient(ctx, created.ID, models.PatientUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.FirstName)
	require.NotNil(t, again.UpdatedAt)
	assert.False(t, again.UpdatedAt.Before(first))
}

func TestListPatientsWindow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		in := testPatientCreate()
		in.FirstName = fmt.Sprintf("Patient%d", i)
		_, err := store.CreatePatient(ctx, in)
		require.NoError(t, err)
	}

	patients, err := store.ListPatients(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Patient1", patients[0].FirstName)
	assert.Equal(t, "Patient2", patients[1].FirstName)
	assert.Less(t, patients[0].ID, patients[1].ID)
}

func createTestAppointment(t *testing.T, store *Store, patientID int) *models.Appointment {
	t.Helper()
	desc := "Initial consultation"
	a, err := store.CreateAppointment(context.Background(), models.AppointmentCreate{
		PatientID:       patientID,
		AppointmentDate: time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC),
		Description:     &desc,
	})
	require.NoError(t, err)
	return a
}

func TestAppointmentRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	patient, err := store.CreatePatient(ctx, testPatientCreate())
	require.NoError(t, err)

	created := createTestAppointment(t, store, patient.ID)
	assert.Equal(t, models.StatusScheduled, created.Status)
	assert.Nil(t, created.UpdatedAt)

	got, err := store.GetAppointment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, got.PatientID)
	require.NotNil(t, got.Patient, "reads must embed the owning patient")
	assert.Equal(t, "John", got.Patient.FirstName)
	assert.True(t, got.AppointmentDate.Equal(time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC)))
}

func TestAppointmentSoftDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	patient, err := store.CreatePatient(ctx, testPatientCreate())
	require.NoError(t, err)
	created := createTestAppointment(t, store, patient.ID)

	cancelled, err := store.DeleteAppointment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.UpdatedAt)

	// The row must still exist and still show up in listings.
	var count int
	require.NoError(t, store.pool.QueryRow(ctx, "SELECT COUNT(*) FROM appointments").Scan(&count))
	assert.Equal(t, 1, count)

	listed, err := store.ListAppointments(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.StatusCancelled, listed[0].Status)

	_, err = store.DeleteAppointment(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPatientDeleteCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	patient, err := store.CreatePatient(ctx, testPatientCreate())
	require.NoError(t, err)
	created := createTestAppointment(t, store, patient.ID)

	existed, err := store.DeletePatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = store.GetPatient(ctx, patient.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetAppointment(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
