package services

import (
	"context"
	"sort"
	"time"

	"clinic_back_end_go/db"
	"clinic_back_end_go/models"
)

// Compile-time checks that the fake satisfies the handler contracts.
var (
	_ PatientStore     = (*fakeStore)(nil)
	_ AppointmentStore = (*fakeStore)(nil)
)

// fakeStore is an in-memory stand-in for db.Store with the same
// observable semantics: id assignment in insertion order, timestamp
// stamping, cascade on patient delete and the appointment soft delete.
// Setting failWith makes every operation fail, for fault-path tests.
type fakeStore struct {
	failWith          error
	patients          map[int]models.Patient
	appointments      map[int]models.Appointment
	nextPatientID     int
	nextAppointmentID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		patients:          map[int]models.Patient{},
		appointments:      map[int]models.Appointment{},
		nextPatientID:     1,
		nextAppointmentID: 1,
	}
}

func (f *fakeStore) GetPatient(ctx context.Context, id int) (*models.Patient, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.patients[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) ListPatients(ctx context.Context, skip, limit int) ([]models.Patient, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	ids := make([]int, 0, len(f.patients))
	for id := range f.patients {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	patients := []models.Patient{}
	for _, id := range ids {
		if skip > 0 {
			skip--
			continue
		}
		if len(patients) == limit {
			break
		}
		patients = append(patients, f.patients[id])
	}
	return patients, nil
}

func (f *fakeStore) CreatePatient(ctx context.Context, in models.PatientCreate) (*models.Patient, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p := models.Patient{
		ID:          f.nextPatientID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Address:     in.Address,
		CreatedAt:   time.Now().UTC(),
	}
	f.nextPatientID++
	f.patients[p.ID] = p
	return &p, nil
}

func (f *fakeStore) UpdatePatient(ctx context.Context, id int, upd models.PatientUpdate) (*models.Patient, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.patients[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	upd.Apply(&p)
	now := time.Now().UTC()
	p.UpdatedAt = &now
	f.patients[id] = p
	return &p, nil
}

func (f *fakeStore) DeletePatient(ctx context.Context, id int) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.patients[id]; !ok {
		return false, nil
	}
	delete(f.patients, id)
	for aid, a := range f.appointments {
		if a.PatientID == id {
			delete(f.appointments, aid)
		}
	}
	return true, nil
}

func (f *fakeStore) GetAppointment(ctx context.Context, id int) (*models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	a, ok := f.appointments[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	if p, ok := f.patients[a.PatientID]; ok {
		a.Patient = &p
	}
	return &a, nil
}

func (f *fakeStore) ListAppointments(ctx context.Context, skip, limit int) ([]models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	ids := make([]int, 0, len(f.appointments))
	for id := range f.appointments {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	appointments := []models.Appointment{}
	for _, id := range ids {
		if skip > 0 {
			skip--
			continue
		}
		if len(appointments) == limit {
			break
		}
		a := f.appointments[id]
		if p, ok := f.patients[a.PatientID]; ok {
			a.Patient = &p
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

func (f *fakeStore) CreateAppointment(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	a := models.Appointment{
		ID:              f.nextAppointmentID,
		PatientID:       in.PatientID,
		AppointmentDate: in.AppointmentDate,
		Description:     in.Description,
		Status:          in.StatusOrDefault(),
		CreatedAt:       time.Now().UTC(),
	}
	f.nextAppointmentID++
	f.appointments[a.ID] = a
	return &a, nil
}

func (f *fakeStore) UpdateAppointment(ctx context.Context, id int, upd models.AppointmentUpdate) (*models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	a, ok := f.appointments[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	upd.Apply(&a)
	now := time.Now().UTC()
	a.UpdatedAt = &now
	f.appointments[id] = a
	return f.GetAppointment(ctx, id)
}

func (f *fakeStore) DeleteAppointment(ctx context.Context, id int) (*models.Appointment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	a, ok := f.appointments[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	a.Status = models.StatusCancelled
	now := time.Now().UTC()
	a.UpdatedAt = &now
	f.appointments[id] = a
	return f.GetAppointment(ctx, id)
}
