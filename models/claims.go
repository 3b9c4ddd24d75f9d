package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the structure of the JWT claims
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}
