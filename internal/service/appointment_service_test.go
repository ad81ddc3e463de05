package service

import (
	"fmt"
	"testing"
	"time"

	"patient-appointment-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestDoctor(t *testing.T, db *gorm.DB, name string) *models.Doctor {
	t.Helper()
	doctor, err := newDoctorService(db).Register(DoctorDetails{
		Name:           name,
		Email:          fmt.Sprintf("%s@clinic.test", name),
		Password:       "secret1",
		Specialization: "GP",
	})
	require.NoError(t, err)
	return doctor
}

func createTestPatient(t *testing.T, db *gorm.DB, name string) *models.Patient {
	t.Helper()
	patient, err := newPatientService(db).Register(PatientDetails{
		Name:        name,
		Email:       fmt.Sprintf("%s@x.com", name),
		Password:    "secret1",
		PhoneNumber: "555",
	})
	require.NoError(t, err)
	return patient
}

func TestBookRejectsUnknownDoctor(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)
	patient := createTestPatient(t, db, "john")

	_, err := svc.Book(AppointmentDetails{
		DoctorID:        999,
		PatientID:       patient.ID,
		AppointmentTime: time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing is persisted on a failed booking
	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestBookRejectsUnknownPatient(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)
	doctor := createTestDoctor(t, db, "alice")

	_, err := svc.Book(AppointmentDetails{
		DoctorID:        doctor.ID,
		PatientID:       999,
		AppointmentTime: time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestBookAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)
	doctor := createTestDoctor(t, db, "alice")
	patient := createTestPatient(t, db, "john")
	when := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)

	booked, err := svc.Book(AppointmentDetails{
		DoctorID:        doctor.ID,
		PatientID:       patient.ID,
		AppointmentTime: when,
	})
	require.NoError(t, err)
	require.NotZero(t, booked.ID)

	fetched, err := svc.GetByID(booked.ID)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, fetched.DoctorID)
	assert.Equal(t, patient.ID, fetched.PatientID)
	assert.True(t, fetched.AppointmentTime.Equal(when))
	// Doctor and patient come back attached
	assert.Equal(t, doctor.Email, fetched.Doctor.Email)
	assert.Equal(t, patient.Email, fetched.Patient.Email)
}

func TestAppointmentUpdateReresolvesReferences(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)
	doctor1 := createTestDoctor(t, db, "alice")
	doctor2 := createTestDoctor(t, db, "bob")
	patient := createTestPatient(t, db, "john")

	booked, err := svc.Book(AppointmentDetails{
		DoctorID:        doctor1.ID,
		PatientID:       patient.ID,
		AppointmentTime: time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	newTime := time.Date(2026, 9, 21, 9, 0, 0, 0, time.UTC)
	_, err = svc.Update(booked.ID, AppointmentDetails{
		DoctorID:        doctor2.ID,
		PatientID:       patient.ID,
		AppointmentTime: newTime,
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(booked.ID)
	require.NoError(t, err)
	assert.Equal(t, doctor2.ID, fetched.DoctorID)
	assert.True(t, fetched.AppointmentTime.Equal(newTime))
}

func TestAppointmentUpdateNonexistent(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)
	doctor := createTestDoctor(t, db, "alice")
	patient := createTestPatient(t, db, "john")

	_, err := svc.Update(999, AppointmentDetails{
		DoctorID:        doctor.ID,
		PatientID:       patient.ID,
		AppointmentTime: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAppointmentUpdateUnknownDoctor(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)
	doctor := createTestDoctor(t, db, "alice")
	patient := createTestPatient(t, db, "john")
	when := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)

	booked, err := svc.Book(AppointmentDetails{
		DoctorID:        doctor.ID,
		PatientID:       patient.ID,
		AppointmentTime: when,
	})
	require.NoError(t, err)

	_, err = svc.Update(booked.ID, AppointmentDetails{
		DoctorID:        999,
		PatientID:       patient.ID,
		AppointmentTime: when.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// The stored appointment is untouched by the failed update
	fetched, err := svc.GetByID(booked.ID)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, fetched.DoctorID)
	assert.True(t, fetched.AppointmentTime.Equal(when))
}

func TestListByDoctorFiltersByReference(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)
	doctor1 := createTestDoctor(t, db, "alice")
	doctor2 := createTestDoctor(t, db, "bob")
	patient1 := createTestPatient(t, db, "john")
	patient2 := createTestPatient(t, db, "jane")

	base := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	for i, d := range []struct {
		doctorID  uint
		patientID uint
	}{
		{doctor1.ID, patient1.ID},
		{doctor1.ID, patient2.ID},
		{doctor2.ID, patient1.ID},
	} {
		_, err := svc.Book(AppointmentDetails{
			DoctorID:        d.doctorID,
			PatientID:       d.patientID,
			AppointmentTime: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	forDoctor1, err := svc.ListByDoctor(doctor1.ID)
	require.NoError(t, err)
	require.Len(t, forDoctor1, 2)
	for _, a := range forDoctor1 {
		assert.Equal(t, doctor1.ID, a.DoctorID)
	}

	forPatient1, err := svc.ListByPatient(patient1.ID)
	require.NoError(t, err)
	require.Len(t, forPatient1, 2)
	for _, a := range forPatient1 {
		assert.Equal(t, patient1.ID, a.PatientID)
	}

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAppointmentDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)
	doctor := createTestDoctor(t, db, "alice")
	patient := createTestPatient(t, db, "john")

	assert.ErrorIs(t, svc.Delete(404), ErrNotFound)

	booked, err := svc.Book(AppointmentDetails{
		DoctorID:        doctor.ID,
		PatientID:       patient.ID,
		AppointmentTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(booked.ID))

	_, err = svc.GetByID(booked.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
