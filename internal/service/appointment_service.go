package service

import (
	"fmt"
	"time"

	"patient-appointment-system/internal/models"
)

type AppointmentService struct {
	appointmentRepo AppointmentStore
	doctorRepo      DoctorStore
	patientRepo     PatientStore
	auditRepo       AuditStore
}

func NewAppointmentService(
	appointmentRepo AppointmentStore,
	doctorRepo DoctorStore,
	patientRepo PatientStore,
	auditRepo AuditStore,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		auditRepo:       auditRepo,
	}
}

// AppointmentDetails carries the full replacement state of an appointment.
type AppointmentDetails struct {
	DoctorID        uint
	PatientID       uint
	AppointmentTime time.Time
}

// Book schedules a new appointment. Both the doctor and the patient must
// already exist; booking and update enforce the same existence checks.
func (s *AppointmentService) Book(details AppointmentDetails) (*models.Appointment, error) {
	doctor, err := s.doctorRepo.FindByID(details.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("doctor %d: %w", details.DoctorID, err)
	}
	patient, err := s.patientRepo.FindByID(details.PatientID)
	if err != nil {
		return nil, fmt.Errorf("patient %d: %w", details.PatientID, err)
	}

	appointment := &models.Appointment{
		AppointmentTime: details.AppointmentTime,
		DoctorID:        doctor.ID,
		PatientID:       patient.ID,
	}
	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	_ = s.auditRepo.Create(models.PrincipalPatient, &patient.ID, "appointment_book",
		fmt.Sprintf("Appointment %d booked with doctor %d", appointment.ID, doctor.ID))

	appointment.Doctor = *doctor
	appointment.Patient = *patient
	return appointment, nil
}

// GetByID retrieves an appointment by id
func (s *AppointmentService) GetByID(id uint) (*models.Appointment, error) {
	return s.appointmentRepo.FindByID(id)
}

// List retrieves every appointment
func (s *AppointmentService) List() ([]models.Appointment, error) {
	return s.appointmentRepo.FindAll()
}

// ListByDoctor retrieves the appointments referencing the given doctor
func (s *AppointmentService) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	return s.appointmentRepo.FindByDoctorID(doctorID)
}

// ListByPatient retrieves the appointments referencing the given patient
func (s *AppointmentService) ListByPatient(patientID uint) ([]models.Appointment, error) {
	return s.appointmentRepo.FindByPatientID(patientID)
}

// Update re-resolves the doctor and patient from details and overwrites the
// appointment's references and scheduled time. Fails with ErrNotFound when
// the appointment, the doctor, or the patient id does not resolve.
func (s *AppointmentService) Update(id uint, details AppointmentDetails) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("appointment %d: %w", id, err)
	}

	doctor, err := s.doctorRepo.FindByID(details.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("doctor %d: %w", details.DoctorID, err)
	}
	patient, err := s.patientRepo.FindByID(details.PatientID)
	if err != nil {
		return nil, fmt.Errorf("patient %d: %w", details.PatientID, err)
	}

	appointment.DoctorID = doctor.ID
	appointment.PatientID = patient.ID
	appointment.AppointmentTime = details.AppointmentTime

	if err := s.appointmentRepo.Save(appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	appointment.Doctor = *doctor
	appointment.Patient = *patient
	return appointment, nil
}

// Delete removes an appointment by id
func (s *AppointmentService) Delete(id uint) error {
	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("appointment %d: %w", id, err)
	}
	if err := s.appointmentRepo.Delete(appointment); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	_ = s.auditRepo.Create(models.PrincipalPatient, &appointment.PatientID, "appointment_delete",
		fmt.Sprintf("Appointment %d deleted", id))

	return nil
}
