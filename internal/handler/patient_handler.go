package handler

import (
	"errors"
	"net/http"
	"strconv"

	"patient-appointment-system/internal/middleware"
	"patient-appointment-system/internal/service"
	"patient-appointment-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
	authService    *service.AuthService
}

func NewPatientHandler(patientService *service.PatientService, authService *service.AuthService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		authService:    authService,
	}
}

type RegisterPatientRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
}

// Register handles patient registration
func (h *PatientHandler) Register(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.Register(service.PatientDetails{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to register patient")
		return
	}

	utils.CreatedResponse(c, patient)
}

// Login authenticates a patient and issues a session
func (h *PatientHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	patient, session, err := h.authService.LoginPatient(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	setRefreshCookie(c, session.RefreshToken)
	utils.SuccessResponse(c, gin.H{
		"access_token": session.AccessToken,
		"patient":      patient,
	})
}

// GetProfile returns the authenticated patient's profile
func (h *PatientHandler) GetProfile(c *gin.Context) {
	principalID, _ := c.Get(middleware.ContextPrincipalID)

	patient, err := h.patientService.GetByID(principalID.(uint))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	utils.SuccessResponse(c, patient)
}

// UpdateProfile replaces the authenticated patient's profile wholesale
func (h *PatientHandler) UpdateProfile(c *gin.Context) {
	principalID, _ := c.Get(middleware.ContextPrincipalID)

	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.Update(principalID.(uint), service.PatientDetails{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.SuccessResponse(c, patient)
}

// List returns all patients, e.g. for a doctor's medication form
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.patientService.List()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// GetByID returns a single patient by id
func (h *PatientHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patient")
		return
	}

	utils.SuccessResponse(c, patient)
}

// Delete removes a patient by id
func (h *PatientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete patient")
		return
	}

	utils.MessageResponse(c, "Patient deleted successfully")
}
