package service

import (
	"fmt"

	"patient-appointment-system/internal/models"
	"patient-appointment-system/pkg/utils"
)

type PatientService struct {
	patientRepo PatientStore
	auditRepo   AuditStore
}

func NewPatientService(patientRepo PatientStore, auditRepo AuditStore) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
	}
}

// PatientDetails carries a full replacement profile, same overwrite
// semantics as DoctorDetails.
type PatientDetails struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
}

// Register creates a new patient account. The email must not be taken.
func (s *PatientService) Register(details PatientDetails) (*models.Patient, error) {
	exists, err := s.patientRepo.ExistsByEmail(details.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("patient with email %s: %w", details.Email, ErrAlreadyExists)
	}

	hash, err := utils.HashPassword(details.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &models.Patient{
		Name:         details.Name,
		Email:        details.Email,
		PasswordHash: hash,
		PhoneNumber:  details.PhoneNumber,
	}
	if err := s.patientRepo.Create(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	_ = s.auditRepo.Create(models.PrincipalPatient, &patient.ID, "patient_register",
		fmt.Sprintf("Patient %s registered", patient.Email))

	return patient, nil
}

// Authenticate verifies a patient's credentials, with the same error
// contract as DoctorService.Authenticate.
func (s *PatientService) Authenticate(email, password string) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if !utils.ComparePassword(patient.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return patient, nil
}

// GetByID retrieves a patient by id
func (s *PatientService) GetByID(id uint) (*models.Patient, error) {
	return s.patientRepo.FindByID(id)
}

// List retrieves all patients
func (s *PatientService) List() ([]models.Patient, error) {
	return s.patientRepo.FindAll()
}

// Update replaces a patient's profile wholesale, re-hashing the password.
func (s *PatientService) Update(id uint, details PatientDetails) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("patient %d: %w", id, err)
	}

	hash, err := utils.HashPassword(details.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient.Name = details.Name
	patient.Email = details.Email
	patient.PasswordHash = hash
	patient.PhoneNumber = details.PhoneNumber

	if err := s.patientRepo.Save(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// Delete removes a patient by id. Appointments and medications that still
// reference the patient are not cascaded.
func (s *PatientService) Delete(id uint) error {
	patient, err := s.patientRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("patient %d: %w", id, err)
	}
	if err := s.patientRepo.Delete(patient); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	_ = s.auditRepo.Create(models.PrincipalPatient, &id, "patient_delete",
		fmt.Sprintf("Patient %s deleted", patient.Email))

	return nil
}
