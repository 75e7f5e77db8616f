package utils

import (
	"github.com/golang-jwt/jwt/v5"
	"os"
	"time"
)

const TokenLifetime = time.Minute * 60

type Claims struct {
	jwt.RegisteredClaims
}

func signingKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// CreateToken issues a bearer token whose subject is the user's email.
func CreateToken(email string) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return signingKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
