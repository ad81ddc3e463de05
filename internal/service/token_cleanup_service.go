package service

import (
	"context"
	"log"
	"time"
)

// TokenCleanupService periodically purges expired and revoked refresh
// tokens so the sessions table does not grow without bound.
type TokenCleanupService struct {
	tokenRepo TokenStore
	interval  time.Duration
}

func NewTokenCleanupService(tokenRepo TokenStore, interval time.Duration) *TokenCleanupService {
	return &TokenCleanupService{
		tokenRepo: tokenRepo,
		interval:  interval,
	}
}

// Start runs the cleanup loop until the context is cancelled
func (w *TokenCleanupService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Token cleanup worker started - purging every %s", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Token cleanup worker stopped")
			return
		case <-ticker.C:
			w.purge()
		}
	}
}

func (w *TokenCleanupService) purge() {
	removed, err := w.tokenRepo.DeleteExpired()
	if err != nil {
		log.Printf("Error purging refresh tokens: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Purged %d expired refresh tokens", removed)
	}
}
