package service

import (
	"errors"
	"fmt"
	"time"

	"patient-appointment-system/internal/models"
	"patient-appointment-system/pkg/utils"
)

type AuthService struct {
	doctorService  *DoctorService
	patientService *PatientService
	tokenRepo      TokenStore
	auditRepo      AuditStore
}

func NewAuthService(
	doctorService *DoctorService,
	patientService *PatientService,
	tokenRepo TokenStore,
	auditRepo AuditStore,
) *AuthService {
	return &AuthService{
		doctorService:  doctorService,
		patientService: patientService,
		tokenRepo:      tokenRepo,
		auditRepo:      auditRepo,
	}
}

// Session is the pair of tokens issued on a successful login.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// LoginDoctor authenticates a doctor and issues a session. Unknown email
// and wrong password are both reported as ErrInvalidCredentials so a caller
// cannot probe which emails are registered.
func (s *AuthService) LoginDoctor(email, password string) (*models.Doctor, *Session, error) {
	doctor, err := s.doctorService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidCredentials) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	session, err := s.issueSession(models.PrincipalDoctor, doctor.ID)
	if err != nil {
		return nil, nil, err
	}

	_ = s.auditRepo.Create(models.PrincipalDoctor, &doctor.ID, "doctor_login",
		fmt.Sprintf("Doctor %s logged in", doctor.Email))

	return doctor, session, nil
}

// LoginPatient authenticates a patient and issues a session, with the same
// masking of failure causes as LoginDoctor.
func (s *AuthService) LoginPatient(email, password string) (*models.Patient, *Session, error) {
	patient, err := s.patientService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidCredentials) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	session, err := s.issueSession(models.PrincipalPatient, patient.ID)
	if err != nil {
		return nil, nil, err
	}

	_ = s.auditRepo.Create(models.PrincipalPatient, &patient.ID, "patient_login",
		fmt.Sprintf("Patient %s logged in", patient.Email))

	return patient, session, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.tokenRepo.FindByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}
	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.PrincipalID, token.PrincipalType)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token, invalidating the session
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)
	if err := s.tokenRepo.RevokeByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *AuthService) issueSession(principalType string, principalID uint) (*Session, error) {
	accessToken, err := utils.GenerateAccessToken(principalID, principalType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenModel := &models.RefreshToken{
		PrincipalType: principalType,
		PrincipalID:   principalID,
		TokenHash:     utils.HashRefreshToken(refreshToken),
		ExpiresAt:     time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.tokenRepo.Create(tokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
