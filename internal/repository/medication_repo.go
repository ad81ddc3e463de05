package repository

import (
	"errors"

	"patient-appointment-system/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MedicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepo(db *gorm.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

// Create inserts a new medication and assigns its id
func (r *MedicationRepository) Create(medication *models.Medication) error {
	return r.db.Omit(clause.Associations).Create(medication).Error
}

// Save upserts a medication by id
func (r *MedicationRepository) Save(medication *models.Medication) error {
	return r.db.Omit(clause.Associations).Save(medication).Error
}

// FindByID finds a medication by id with its owning patient attached
func (r *MedicationRepository) FindByID(id uint) (*models.Medication, error) {
	var medication models.Medication
	err := r.db.Preload("Patient").First(&medication, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &medication, nil
}

// FindAll retrieves all medications
func (r *MedicationRepository) FindAll() ([]models.Medication, error) {
	var medications []models.Medication
	err := r.db.Preload("Patient").Find(&medications).Error
	return medications, err
}

// FindByPatientID retrieves all medications owned by the given patient
func (r *MedicationRepository) FindByPatientID(patientID uint) ([]models.Medication, error) {
	var medications []models.Medication
	err := r.db.Preload("Patient").
		Where("patient_id = ?", patientID).
		Find(&medications).Error
	return medications, err
}

// Delete removes a medication
func (r *MedicationRepository) Delete(medication *models.Medication) error {
	return r.db.Delete(medication).Error
}
