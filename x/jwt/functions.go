package jwt

import (
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Create creates server signed JWT
func Create(claims Claims, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is not configured")
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate checks is jwt signature valid and not expired
func Validate(token string, secret string) (Claims, error) {
	var claims Claims

	parsed, err := gojwt.ParseWithClaims(token, &claims, func(t *gojwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, err
	}

	if !parsed.Valid {
		return Claims{}, fmt.Errorf("invalid jwt")
	}

	if claims.Subject != SubjectAccess {
		return Claims{}, fmt.Errorf("unexpected jwt subject: %s", claims.Subject)
	}

	return claims, nil
}
