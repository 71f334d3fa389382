package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/google/uuid"
)

// Admin sessions are DB-backed so a logout can revoke a JWT before it
// expires: the middleware only honors a token while a matching active row
// exists.

const (
	// adminSessionTTL is shared by the token, the session row and the
	// cookie so a back-office login expires everywhere at once.
	adminSessionTTL = 24 * time.Hour

	// Revoked rows stay behind for audit until the purge reclaims them.
	revokedRetention = 7 * 24 * time.Hour
)

// AdminSessionService manages the admin_sessions table.
type AdminSessionService struct{}

// Open records a freshly issued token as an active session.
func (s *AdminSessionService) Open(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	ip string,
	userAgent string,
) (*models.AdminSession, error) {
	now := time.Now()
	session := &models.AdminSession{
		ID:             uuid.Must(uuid.NewV7()),
		AdminID:        adminID,
		TokenHash:      GetAdminAuthService().HashToken(token),
		IPAddress:      ip,
		UserAgent:      userAgent,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(adminSessionTTL),
		IsActive:       true,
	}
	if err := config.Gorm.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("open admin session: %w", err)
	}

	log.Printf("[auth] opened session %s for admin %s from %s", session.ID, adminID, ip)
	return session, nil
}

// Touch bumps the session's last-activity marker. A missing or revoked row
// is not an error here; the auth middleware already decided whether the
// request proceeds.
func (s *AdminSessionService) Touch(ctx context.Context, tokenHash string) error {
	return config.Gorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND is_active", tokenHash).
		Update("last_activity_at", time.Now()).Error
}

// Revoke deactivates every live session the admin holds.
func (s *AdminSessionService) Revoke(ctx context.Context, adminID uuid.UUID) error {
	result := config.Gorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("admin_id = ? AND is_active", adminID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}

	log.Printf("[auth] revoked %d session(s) for admin %s", result.RowsAffected, adminID)
	return nil
}

// PurgeExpired deletes sessions past their expiry and revoked rows past the
// audit retention window. main runs this on a timer.
func (s *AdminSessionService) PurgeExpired(ctx context.Context) (int64, error) {
	now := time.Now()
	result := config.Gorm.WithContext(ctx).
		Where("expires_at < ? OR (NOT is_active AND last_activity_at < ?)",
			now, now.Add(-revokedRetention)).
		Delete(&models.AdminSession{})
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("[auth] purged %d stale admin sessions", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// GetAdminSessionService returns the shared session service.
func GetAdminSessionService() *AdminSessionService {
	adminServices.once.Do(initAdminServices)
	return adminServices.sessions
}
