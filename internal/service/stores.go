package service

import (
	"patient-appointment-system/internal/models"
)

// Store contracts the services depend on. The gorm-backed repositories in
// internal/repository satisfy them; they are wired together in cmd/server.

type DoctorStore interface {
	Create(doctor *models.Doctor) error
	Save(doctor *models.Doctor) error
	FindByID(id uint) (*models.Doctor, error)
	FindByEmail(email string) (*models.Doctor, error)
	ExistsByEmail(email string) (bool, error)
	FindAll() ([]models.Doctor, error)
	Delete(doctor *models.Doctor) error
}

type PatientStore interface {
	Create(patient *models.Patient) error
	Save(patient *models.Patient) error
	FindByID(id uint) (*models.Patient, error)
	FindByEmail(email string) (*models.Patient, error)
	ExistsByEmail(email string) (bool, error)
	FindAll() ([]models.Patient, error)
	Delete(patient *models.Patient) error
}

type AppointmentStore interface {
	Create(appointment *models.Appointment) error
	Save(appointment *models.Appointment) error
	FindByID(id uint) (*models.Appointment, error)
	FindAll() ([]models.Appointment, error)
	FindByDoctorID(doctorID uint) ([]models.Appointment, error)
	FindByPatientID(patientID uint) ([]models.Appointment, error)
	Delete(appointment *models.Appointment) error
}

type MedicationStore interface {
	Create(medication *models.Medication) error
	Save(medication *models.Medication) error
	FindByID(id uint) (*models.Medication, error)
	FindAll() ([]models.Medication, error)
	FindByPatientID(patientID uint) ([]models.Medication, error)
	Delete(medication *models.Medication) error
}

type TokenStore interface {
	Create(token *models.RefreshToken) error
	FindByHash(hash string) (*models.RefreshToken, error)
	RevokeByHash(hash string) error
	DeleteExpired() (int64, error)
}

type AuditStore interface {
	Create(actorType string, actorID *uint, action string, details string) error
}
