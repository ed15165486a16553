package jwt

import (
	gojwt "github.com/golang-jwt/jwt/v5"
)

const (
	SubjectAccess = "CHP_ACCESS"
)

// Claims is jwt payload type
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	gojwt.RegisteredClaims
}
