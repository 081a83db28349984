package auth_test

import (
	"testing"
	"time"

	"crm/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, 24*time.Hour)

	token, err := tokens.GenerateToken("test-user-id")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedUserID, err := tokens.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "test-user-id", parsedUserID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)

	_, err := tokens.ParseToken("invalid-token")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("other-secret", time.Hour).GenerateToken("u")
	assert.NoError(t, err)

	_, err = auth.NewTokenManager(testSecret, time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)

	claims := jwt.MapClaims{
		"user_id": "test-user-id",
		"exp":     time.Now().Add(-1 * time.Hour).Unix(),
	}
	expiredToken, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

	_, err := tokens.ParseToken(expiredToken)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_MissingClaims(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	tokenWithoutUserID, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

	_, err := tokens.ParseToken(tokenWithoutUserID)

	assert.ErrorIs(t, err, auth.ErrInvalidClaims)
	assert.Equal(t, "invalid claims", err.Error())
}
