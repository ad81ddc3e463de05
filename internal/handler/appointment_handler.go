package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"patient-appointment-system/internal/service"
	"patient-appointment-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// AppointmentRequest is used for booking and for full-replace updates.
type AppointmentRequest struct {
	DoctorID        uint      `json:"doctor_id" binding:"required"`
	PatientID       uint      `json:"patient_id" binding:"required"`
	AppointmentTime time.Time `json:"appointment_time" binding:"required"`
}

// Book schedules a new appointment
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	appointment, err := h.appointmentService.Book(service.AppointmentDetails{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to book appointment")
		return
	}

	utils.CreatedResponse(c, appointment)
}

// List returns every appointment
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.appointmentService.List()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// GetByID returns a single appointment by id
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Appointment not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointment")
		return
	}

	utils.SuccessResponse(c, appointment)
}

// ListByDoctor returns the appointments referencing the given doctor
func (h *AppointmentHandler) ListByDoctor(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("doctorId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	appointments, err := h.appointmentService.ListByDoctor(uint(doctorID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// ListByPatient returns the appointments referencing the given patient
func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("patientId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	appointments, err := h.appointmentService.ListByPatient(uint(patientID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// Update replaces an appointment's doctor, patient and scheduled time
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	appointment, err := h.appointmentService.Update(uint(id), service.AppointmentDetails{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	utils.SuccessResponse(c, appointment)
}

// Delete removes an appointment by id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	utils.MessageResponse(c, "Appointment deleted successfully")
}
