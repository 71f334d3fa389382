package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "motosouk-store"

// AdminClaims is the payload of a back-office token. The token, the DB
// session record and the cookie all share adminSessionTTL so they expire
// together.
type AdminClaims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

var signingKey struct {
	mu     sync.RWMutex
	secret []byte
}

// InitJWTService installs the signing secret. Called once at boot; main
// refuses to start without a JWT_SECRET.
func InitJWTService(secret string) error {
	if secret == "" {
		return errors.New("JWT secret must not be empty")
	}
	signingKey.mu.Lock()
	signingKey.secret = []byte(secret)
	signingKey.mu.Unlock()
	return nil
}

func signingSecret() ([]byte, error) {
	signingKey.mu.RLock()
	defer signingKey.mu.RUnlock()
	if len(signingKey.secret) == 0 {
		return nil, errors.New("JWT service not initialized")
	}
	return signingKey.secret, nil
}

// GenerateAdminJWT issues a signed token for a back-office login.
func GenerateAdminJWT(adminID, email string) (string, error) {
	secret, err := signingSecret()
	if err != nil {
		return "", err
	}
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email are required")
	}

	now := time.Now()
	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminSessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAdminJWT parses a token and returns its claims when the signature,
// expiry and issuer all check out.
func VerifyAdminJWT(tokenString string) (*AdminClaims, error) {
	secret, err := signingSecret()
	if err != nil {
		return nil, err
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse admin token: %w", err)
	}
	if !token.Valid || claims.AdminID == "" || claims.Email == "" {
		return nil, errors.New("invalid admin token")
	}
	return claims, nil
}
