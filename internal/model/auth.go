package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims carried by tokens from the identity provider.
// The service only validates them and extracts the user id.
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
