package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ScopeAdmin = "admin"

	AccessCookieName = "access_token"
)

type JWTClaims struct {
	Scope     string `json:"scope"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

type AdminTokenRequest struct {
	Key string `json:"key" validate:"required"`
}

type TokenResponse struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
}

// NewAccessToken signs a short-lived admin token with HS256
func NewAccessToken(secret, domain string, ttl time.Duration, now time.Time) (TokenResponse, error) {
	expiry := now.Add(ttl)
	claims := JWTClaims{
		Scope:     ScopeAdmin,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   ScopeAdmin,
			Issuer:    domain,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("error signing token %v", err)
	}
	return TokenResponse{Token: signed, Expiry: expiry}, nil
}

func ValidateJWTToken(tokenString string, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
