package service

import (
	"fmt"
	"os"
	"testing"
	"time"

	"patient-appointment-system/internal/models"
	"patient-appointment-system/internal/repository"
	"patient-appointment-system/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)
	os.Exit(m.Run())
}

// newTestDB opens an isolated in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Medication{},
		&models.RefreshToken{},
		&models.AuditLog{},
	))

	return db
}

func newDoctorService(db *gorm.DB) *DoctorService {
	return NewDoctorService(repository.NewDoctorRepo(db), repository.NewAuditRepo(db))
}

func newPatientService(db *gorm.DB) *PatientService {
	return NewPatientService(repository.NewPatientRepo(db), repository.NewAuditRepo(db))
}

func newAppointmentService(db *gorm.DB) *AppointmentService {
	return NewAppointmentService(
		repository.NewAppointmentRepo(db),
		repository.NewDoctorRepo(db),
		repository.NewPatientRepo(db),
		repository.NewAuditRepo(db),
	)
}

func newMedicationService(db *gorm.DB) *MedicationService {
	return NewMedicationService(repository.NewMedicationRepo(db), repository.NewPatientRepo(db))
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		newDoctorService(db),
		newPatientService(db),
		repository.NewTokenRepo(db),
		repository.NewAuditRepo(db),
	)
}
