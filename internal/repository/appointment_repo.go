package repository

import (
	"errors"

	"patient-appointment-system/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create inserts a new appointment and assigns its id
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Omit(clause.Associations).Create(appointment).Error
}

// Save upserts an appointment by id. Associations are written through
// their foreign keys only, never cascaded.
func (r *AppointmentRepository) Save(appointment *models.Appointment) error {
	return r.db.Omit(clause.Associations).Save(appointment).Error
}

// FindByID finds an appointment by id with its doctor and patient attached
func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// FindAll retrieves all appointments ordered by scheduled time
func (r *AppointmentRepository) FindAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Order("appointment_time ASC").
		Find(&appointments).Error
	return appointments, err
}

// FindByDoctorID retrieves all appointments referencing the given doctor
func (r *AppointmentRepository) FindByDoctorID(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_time ASC").
		Find(&appointments).Error
	return appointments, err
}

// FindByPatientID retrieves all appointments referencing the given patient
func (r *AppointmentRepository) FindByPatientID(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("patient_id = ?", patientID).
		Order("appointment_time ASC").
		Find(&appointments).Error
	return appointments, err
}

// Delete removes an appointment
func (r *AppointmentRepository) Delete(appointment *models.Appointment) error {
	return r.db.Delete(appointment).Error
}
