package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Storefront sessions live in Redis: one opaque token per browser, mapped to
// the customer id (or "" for guests). The same token keys the cart snapshot,
// so a guest cart survives login.

const (
	customerSessionPrefix = "session:customer:"
	CustomerSessionTTL    = 30 * 24 * time.Hour
)

var ErrSessionNotFound = errors.New("session not found or expired")

// CustomerSessionService handles storefront session tokens
type CustomerSessionService struct{}

// NewCustomerSessionService creates a new customer session service
func NewCustomerSessionService() *CustomerSessionService {
	return &CustomerSessionService{}
}

// CreateSession issues a fresh session token. customerID is empty for guests.
func (s *CustomerSessionService) CreateSession(ctx context.Context, customerID string) (string, error) {
	token := uuid.NewString()
	if err := config.RedisClient.Set(ctx, customerSessionPrefix+token, customerID, CustomerSessionTTL).Err(); err != nil {
		log.Printf("[session] failed to create customer session: %v", err)
		return "", err
	}
	return token, nil
}

// Resolve returns the customer id bound to a session token ("" for guests).
func (s *CustomerSessionService) Resolve(ctx context.Context, token string) (string, error) {
	customerID, err := config.RedisClient.Get(ctx, customerSessionPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	// Sliding expiry
	config.RedisClient.Expire(ctx, customerSessionPrefix+token, CustomerSessionTTL)
	return customerID, nil
}

// Bind attaches a customer id to an existing (guest) session token after a
// successful login, preserving the cart keyed by that token.
func (s *CustomerSessionService) Bind(ctx context.Context, token, customerID string) error {
	return config.RedisClient.Set(ctx, customerSessionPrefix+token, customerID, CustomerSessionTTL).Err()
}

// Destroy removes a session token (logout).
func (s *CustomerSessionService) Destroy(ctx context.Context, token string) error {
	return config.RedisClient.Del(ctx, customerSessionPrefix+token).Err()
}

// Global instance
var customerSessionService *CustomerSessionService

// GetCustomerSessionService returns the global customer session service
func GetCustomerSessionService() *CustomerSessionService {
	if customerSessionService == nil {
		customerSessionService = NewCustomerSessionService()
	}
	return customerSessionService
}
