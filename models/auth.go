package models

import "github.com/golang-jwt/jwt/v4"

// JwtClaims carries the authenticated user's identity and role.
type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
