package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT claims for an admin session. RegisteredClaims.ID
// carries the session the token was issued for.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Config represents JWT configuration
type Config struct {
	Secret        string
	AccessExpiry  time.Duration
	Issuer        string
	SigningMethod jwt.SigningMethod
}

// DefaultConfig returns default JWT configuration
func DefaultConfig(secret string, expiry time.Duration) *Config {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Config{
		Secret:        secret,
		AccessExpiry:  expiry,
		Issuer:        "hazardwatch-api",
		SigningMethod: jwt.SigningMethodHS256,
	}
}

// GenerateToken generates a new access token for username bound to sessionID
func GenerateToken(username, sessionID string, cfg *Config) (string, time.Time, error) {
	if cfg == nil {
		return "", time.Time{}, errors.New("JWT config is required")
	}

	now := time.Now()
	expiresAt := now.Add(cfg.AccessExpiry)
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Subject:   username,
			ID:        sessionID,
		},
	}

	token := jwt.NewWithClaims(cfg.SigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken validates and parses a JWT token
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
