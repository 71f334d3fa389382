package services

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService handles admin credential operations
type AdminAuthService struct{}

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// (minimum 8 characters)
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// HashToken hashes a session token using SHA256 for storage in database
func (s *AdminAuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// The admin-facing services share one lazy init so every caller, the seed
// CLI included, gets the same instances the server uses.
var adminServices struct {
	once     sync.Once
	auth     *AdminAuthService
	sessions *AdminSessionService
}

func initAdminServices() {
	adminServices.auth = &AdminAuthService{}
	adminServices.sessions = &AdminSessionService{}
}

// GetAdminAuthService returns the shared credential service.
func GetAdminAuthService() *AdminAuthService {
	adminServices.once.Do(initAdminServices)
	return adminServices.auth
}
