package repository

import (
	"errors"
	"time"

	"patient-appointment-system/internal/models"

	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create stores a new refresh token
func (r *TokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// FindByHash finds an unrevoked refresh token by its hash
func (r *TokenRepository) FindByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ? AND revoked = ?", hash, false).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// RevokeByHash marks a refresh token as revoked by its hash
func (r *TokenRepository) RevokeByHash(hash string) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
}

// DeleteExpired removes expired and revoked refresh tokens and reports
// how many rows were removed. Called by the background cleanup worker.
func (r *TokenRepository) DeleteExpired() (int64, error) {
	res := r.db.Where("expires_at < ? OR revoked = ?", time.Now(), true).
		Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
