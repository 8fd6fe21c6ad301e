package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims. The subject is the account id.
type Claims struct {
	AccountID uint   `json:"aid"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateAccessToken(accountID uint) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}
