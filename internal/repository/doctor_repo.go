package repository

import (
	"errors"

	"patient-appointment-system/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// Create inserts a new doctor and assigns its id
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// Save upserts a doctor by id
func (r *DoctorRepository) Save(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// FindByID finds a doctor by id
func (r *DoctorRepository) FindByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// FindByEmail finds a doctor by email
func (r *DoctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// ExistsByEmail reports whether a doctor with the given email is stored
func (r *DoctorRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// FindAll retrieves all doctors ordered by name
func (r *DoctorRepository) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("name ASC").Find(&doctors).Error
	return doctors, err
}

// Delete removes a doctor
func (r *DoctorRepository) Delete(doctor *models.Doctor) error {
	return r.db.Delete(doctor).Error
}
