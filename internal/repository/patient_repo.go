package repository

import (
	"errors"

	"patient-appointment-system/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create inserts a new patient and assigns its id
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// Save upserts a patient by id
func (r *PatientRepository) Save(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// FindByID finds a patient by id
func (r *PatientRepository) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// FindByEmail finds a patient by email
func (r *PatientRepository) FindByEmail(email string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// ExistsByEmail reports whether a patient with the given email is stored
func (r *PatientRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// FindAll retrieves all patients ordered by name
func (r *PatientRepository) FindAll() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("name ASC").Find(&patients).Error
	return patients, err
}

// Delete removes a patient
func (r *PatientRepository) Delete(patient *models.Patient) error {
	return r.db.Delete(patient).Error
}
