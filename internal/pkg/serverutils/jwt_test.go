package serverutils

import (
	"testing"
	"time"

	"smartmess-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	userId := uuid.New()
	secret := "test-secret"

	token, err := CreateToken(userId, entity.UserRoleStudent, secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	gotId, gotRole, err := ParseToken(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, userId, gotId)
	assert.Equal(t, entity.UserRoleStudent, gotRole)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := CreateToken(uuid.New(), entity.UserRoleOwner, "right-secret")
	assert.NoError(t, err)

	_, _, err = ParseToken(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "student",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, _, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, _, err := ParseToken("not-a-token", "secret")
	assert.Error(t, err)
}

func TestParseTokenMissingUserId(t *testing.T) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, _, err = ParseToken(token, "secret")
	assert.Error(t, err)
}
