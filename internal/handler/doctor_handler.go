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

type DoctorHandler struct {
	doctorService *service.DoctorService
	authService   *service.AuthService
}

func NewDoctorHandler(doctorService *service.DoctorService, authService *service.AuthService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
		authService:   authService,
	}
}

type RegisterDoctorRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Specialization string `json:"specialization" binding:"required,max=100"`
}

// Register handles doctor registration
func (h *DoctorHandler) Register(c *gin.Context) {
	var req RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor, err := h.doctorService.Register(service.DoctorDetails{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Specialization: req.Specialization,
	})
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to register doctor")
		return
	}

	utils.CreatedResponse(c, doctor)
}

// Login authenticates a doctor and issues a session
func (h *DoctorHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	doctor, session, err := h.authService.LoginDoctor(req.Email, req.Password)
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
		"doctor":       doctor,
	})
}

// GetProfile returns the authenticated doctor's profile
func (h *DoctorHandler) GetProfile(c *gin.Context) {
	principalID, _ := c.Get(middleware.ContextPrincipalID)

	doctor, err := h.doctorService.GetByID(principalID.(uint))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Doctor not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	utils.SuccessResponse(c, doctor)
}

// UpdateProfile replaces the authenticated doctor's profile wholesale
func (h *DoctorHandler) UpdateProfile(c *gin.Context) {
	principalID, _ := c.Get(middleware.ContextPrincipalID)

	var req RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor, err := h.doctorService.Update(principalID.(uint), service.DoctorDetails{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Specialization: req.Specialization,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.SuccessResponse(c, doctor)
}

// List returns all doctors, e.g. for populating a booking form
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctorService.List()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetByID returns a single doctor by id
func (h *DoctorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Doctor not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctor")
		return
	}

	utils.SuccessResponse(c, doctor)
}

// Delete removes a doctor by id
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	if err := h.doctorService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete doctor")
		return
	}

	utils.MessageResponse(c, "Doctor deleted successfully")
}
