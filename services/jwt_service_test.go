package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestSigner(t *testing.T) {
	t.Helper()
	require.NoError(t, InitJWTService("test-signing-secret"))
}

func TestAdminJWTRoundTrip(t *testing.T) {
	initTestSigner(t)

	token, err := GenerateAdminJWT("0190fa6e-0000-7000-8000-000000000001", "admin@motosouk.tn")
	require.NoError(t, err)

	claims, err := VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "0190fa6e-0000-7000-8000-000000000001", claims.AdminID)
	assert.Equal(t, "admin@motosouk.tn", claims.Email)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestGenerateAdminJWTRequiresIdentity(t *testing.T) {
	initTestSigner(t)

	_, err := GenerateAdminJWT("", "admin@motosouk.tn")
	assert.Error(t, err)

	_, err = GenerateAdminJWT("some-id", "")
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsTamperedToken(t *testing.T) {
	initTestSigner(t)

	token, err := GenerateAdminJWT("some-id", "admin@motosouk.tn")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = VerifyAdminJWT(tampered)
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsExpiredToken(t *testing.T) {
	initTestSigner(t)

	past := time.Now().Add(-time.Hour)
	claims := AdminClaims{
		AdminID: "some-id",
		Email:   "admin@motosouk.tn",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-signing-secret"))
	require.NoError(t, err)

	_, err = VerifyAdminJWT(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyAdminJWTRejectsWrongIssuer(t *testing.T) {
	initTestSigner(t)

	claims := AdminClaims{
		AdminID: "some-id",
		Email:   "admin@motosouk.tn",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-signing-secret"))
	require.NoError(t, err)

	_, err = VerifyAdminJWT(foreign)
	assert.Error(t, err)
}
