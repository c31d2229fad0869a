package utils

import (
	"fmt"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
)

// ServiceClaims identify the caller of the analysis service.
type ServiceClaims struct {
	jwt.StandardClaims
}

// GenerateServiceToken signs a short lived HS256 token for subject.
func GenerateServiceToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ServiceClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("jwt.SignedString: %w", err)
	}
	return token, nil
}

func ParseServiceToken(secret, raw string) (*ServiceClaims, error) {
	claims := &ServiceClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}
	return claims, nil
}
