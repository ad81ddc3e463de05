package service

import (
	"fmt"

	"patient-appointment-system/internal/models"
	"patient-appointment-system/pkg/utils"
)

type DoctorService struct {
	doctorRepo DoctorStore
	auditRepo  AuditStore
}

func NewDoctorService(doctorRepo DoctorStore, auditRepo AuditStore) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		auditRepo:  auditRepo,
	}
}

// DoctorDetails carries a full replacement profile. Update overwrites every
// field from it; a partially filled value blanks out what it omits.
type DoctorDetails struct {
	Name           string
	Email          string
	Password       string
	Specialization string
}

// Register creates a new doctor account. The email must not be taken.
func (s *DoctorService) Register(details DoctorDetails) (*models.Doctor, error) {
	exists, err := s.doctorRepo.ExistsByEmail(details.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("doctor with email %s: %w", details.Email, ErrAlreadyExists)
	}

	hash, err := utils.HashPassword(details.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doctor := &models.Doctor{
		Name:           details.Name,
		Email:          details.Email,
		PasswordHash:   hash,
		Specialization: details.Specialization,
	}
	if err := s.doctorRepo.Create(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	_ = s.auditRepo.Create(models.PrincipalDoctor, &doctor.ID, "doctor_register",
		fmt.Sprintf("Doctor %s registered", doctor.Email))

	return doctor, nil
}

// Authenticate verifies a doctor's credentials. It returns ErrNotFound for
// an unknown email and ErrInvalidCredentials for a password mismatch; the
// HTTP layer masks the two as one generic failure.
func (s *DoctorService) Authenticate(email, password string) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if !utils.ComparePassword(doctor.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return doctor, nil
}

// GetByID retrieves a doctor by id
func (s *DoctorService) GetByID(id uint) (*models.Doctor, error) {
	return s.doctorRepo.FindByID(id)
}

// List retrieves all doctors
func (s *DoctorService) List() ([]models.Doctor, error) {
	return s.doctorRepo.FindAll()
}

// Update replaces a doctor's profile wholesale and re-hashes the supplied
// password. Fails with ErrNotFound when the id has no matching record; no
// record is ever created as a side effect.
func (s *DoctorService) Update(id uint, details DoctorDetails) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("doctor %d: %w", id, err)
	}

	hash, err := utils.HashPassword(details.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doctor.Name = details.Name
	doctor.Email = details.Email
	doctor.PasswordHash = hash
	doctor.Specialization = details.Specialization

	if err := s.doctorRepo.Save(doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return doctor, nil
}

// Delete removes a doctor by id
func (s *DoctorService) Delete(id uint) error {
	doctor, err := s.doctorRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("doctor %d: %w", id, err)
	}
	if err := s.doctorRepo.Delete(doctor); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	_ = s.auditRepo.Create(models.PrincipalDoctor, &id, "doctor_delete",
		fmt.Sprintf("Doctor %s deleted", doctor.Email))

	return nil
}
