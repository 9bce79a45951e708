package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

// JwtClaims is the token payload issued by the account service and accepted
// by the price routes when JWT_SECRET is configured.
type JwtClaims struct {
	UserID string `json:"userId"`
	Phone  string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
