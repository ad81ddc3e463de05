package handler

import (
	"errors"
	"net/http"
	"strconv"

	"patient-appointment-system/internal/service"
	"patient-appointment-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MedicationHandler struct {
	medicationService *service.MedicationService
}

func NewMedicationHandler(medicationService *service.MedicationService) *MedicationHandler {
	return &MedicationHandler{
		medicationService: medicationService,
	}
}

// MedicationRequest is used for prescribing and for full-replace updates.
type MedicationRequest struct {
	PatientID    uint   `json:"patient_id" binding:"required"`
	Name         string `json:"name" binding:"required,max=100"`
	Dosage       string `json:"dosage" binding:"required,max=100"`
	Instructions string `json:"instructions"`
}

// Add prescribes a new medication
func (h *MedicationHandler) Add(c *gin.Context) {
	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	medication, err := h.medicationService.Add(service.MedicationDetails{
		PatientID:    req.PatientID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to add medication")
		return
	}

	utils.CreatedResponse(c, medication)
}

// List returns every medication
func (h *MedicationHandler) List(c *gin.Context) {
	medications, err := h.medicationService.List()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch medications")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"medications": medications,
		"count":       len(medications),
	})
}

// GetByID returns a single medication by id
func (h *MedicationHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid medication ID")
		return
	}

	medication, err := h.medicationService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Medication not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch medication")
		return
	}

	utils.SuccessResponse(c, medication)
}

// ListByPatient returns the medications owned by the given patient
func (h *MedicationHandler) ListByPatient(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("patientId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	medications, err := h.medicationService.ListByPatient(uint(patientID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch medications")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"medications": medications,
		"count":       len(medications),
	})
}

// Update replaces a medication's fields and owning patient
func (h *MedicationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid medication ID")
		return
	}

	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	medication, err := h.medicationService.Update(uint(id), service.MedicationDetails{
		PatientID:    req.PatientID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update medication")
		return
	}

	utils.SuccessResponse(c, medication)
}

// Delete removes a medication by id
func (h *MedicationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid medication ID")
		return
	}

	if err := h.medicationService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete medication")
		return
	}

	utils.MessageResponse(c, "Medication deleted successfully")
}
