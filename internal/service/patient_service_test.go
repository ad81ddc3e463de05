package service

import (
	"testing"

	"patient-appointment-system/internal/models"
	"patient-appointment-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)

	created, err := svc.Register(PatientDetails{
		Name:        "John Doe",
		Email:       "john@x.com",
		Password:    "p1",
		PhoneNumber: "555",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", fetched.Name)
	assert.Equal(t, "john@x.com", fetched.Email)
	assert.Equal(t, "555", fetched.PhoneNumber)
	assert.True(t, utils.ComparePassword(fetched.PasswordHash, "p1"))

	// Full replacement: every field matches the replacement object
	_, err = svc.Update(created.ID, PatientDetails{
		Name:        "John Q. Doe",
		Email:       "john.doe@x.com",
		Password:    "p2",
		PhoneNumber: "556",
	})
	require.NoError(t, err)

	fetched, err = svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Q. Doe", fetched.Name)
	assert.Equal(t, "john.doe@x.com", fetched.Email)
	assert.Equal(t, "556", fetched.PhoneNumber)
	assert.True(t, utils.ComparePassword(fetched.PasswordHash, "p2"))
}

func TestPatientRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)

	_, err := svc.Register(PatientDetails{
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		Password:    "secret1",
		PhoneNumber: "111",
	})
	require.NoError(t, err)

	_, err = svc.Register(PatientDetails{
		Name:        "Jane Clone",
		Email:       "jane@x.com",
		Password:    "secret2",
		PhoneNumber: "222",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	var count int64
	db.Model(&models.Patient{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestPatientAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)

	_, err := svc.Register(PatientDetails{
		Name:        "Pat",
		Email:       "pat@x.com",
		Password:    "letmein",
		PhoneNumber: "333",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate("unknown@x.com", "letmein")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Authenticate("pat@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	patient, err := svc.Authenticate("pat@x.com", "letmein")
	require.NoError(t, err)
	assert.Equal(t, "Pat", patient.Name)
}

func TestPatientUpdateNonexistent(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)

	_, err := svc.Update(123, PatientDetails{
		Name:        "Ghost",
		Email:       "ghost@x.com",
		Password:    "boo",
		PhoneNumber: "000",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	db.Model(&models.Patient{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestPatientDeleteNonexistent(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)

	assert.ErrorIs(t, svc.Delete(77), ErrNotFound)
}
