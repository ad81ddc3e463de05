package service

import (
	"fmt"

	"patient-appointment-system/internal/models"
)

type MedicationService struct {
	medicationRepo MedicationStore
	patientRepo    PatientStore
}

func NewMedicationService(medicationRepo MedicationStore, patientRepo PatientStore) *MedicationService {
	return &MedicationService{
		medicationRepo: medicationRepo,
		patientRepo:    patientRepo,
	}
}

// MedicationDetails carries the full replacement state of a medication.
type MedicationDetails struct {
	PatientID    uint
	Name         string
	Dosage       string
	Instructions string
}

// Add prescribes a new medication to an existing patient
func (s *MedicationService) Add(details MedicationDetails) (*models.Medication, error) {
	patient, err := s.patientRepo.FindByID(details.PatientID)
	if err != nil {
		return nil, fmt.Errorf("patient %d: %w", details.PatientID, err)
	}

	medication := &models.Medication{
		Name:         details.Name,
		Dosage:       details.Dosage,
		Instructions: details.Instructions,
		PatientID:    patient.ID,
	}
	if err := s.medicationRepo.Create(medication); err != nil {
		return nil, fmt.Errorf("failed to add medication: %w", err)
	}

	medication.Patient = *patient
	return medication, nil
}

// GetByID retrieves a medication by id
func (s *MedicationService) GetByID(id uint) (*models.Medication, error) {
	return s.medicationRepo.FindByID(id)
}

// List retrieves every medication
func (s *MedicationService) List() ([]models.Medication, error) {
	return s.medicationRepo.FindAll()
}

// ListByPatient retrieves the medications owned by the given patient
func (s *MedicationService) ListByPatient(patientID uint) ([]models.Medication, error) {
	return s.medicationRepo.FindByPatientID(patientID)
}

// Update overwrites name, dosage, instructions and the owning patient.
// Fails with ErrNotFound when the medication or the patient id is absent.
func (s *MedicationService) Update(id uint, details MedicationDetails) (*models.Medication, error) {
	medication, err := s.medicationRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("medication %d: %w", id, err)
	}

	patient, err := s.patientRepo.FindByID(details.PatientID)
	if err != nil {
		return nil, fmt.Errorf("patient %d: %w", details.PatientID, err)
	}

	medication.Name = details.Name
	medication.Dosage = details.Dosage
	medication.Instructions = details.Instructions
	medication.PatientID = patient.ID

	if err := s.medicationRepo.Save(medication); err != nil {
		return nil, fmt.Errorf("failed to update medication: %w", err)
	}

	medication.Patient = *patient
	return medication, nil
}

// Delete removes a medication by id
func (s *MedicationService) Delete(id uint) error {
	medication, err := s.medicationRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("medication %d: %w", id, err)
	}
	if err := s.medicationRepo.Delete(medication); err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	return nil
}
