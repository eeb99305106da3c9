package serverutils

import (
	"fmt"
	"time"

	"smartmess-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued bearer credential stays valid.
const TokenTTL = 7 * 24 * time.Hour

// CreateToken mints an HS256 bearer token carrying the user id and role.
func CreateToken(userId uuid.UUID, role entity.UserRole, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"role":    string(role),
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and returns the embedded identity.
func ParseToken(tokenStr, secret string) (uuid.UUID, entity.UserRole, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", fmt.Errorf("invalid claims")
	}

	userIdStr, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid user id claim")
	}

	roleStr, _ := claims["role"].(string)
	return userId, entity.UserRole(roleStr), nil
}
