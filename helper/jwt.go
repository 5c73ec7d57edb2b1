package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
)

// TokenTTL is the fixed validity window of a session token.
const TokenTTL = 8 * time.Hour

func GenerateToken(admin model.Admin, secret string) (string, error) {
	claims := model.JWTClaims{
		AdminName: admin.Name,
		AdminCode: admin.Code,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString, secret string) (*model.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*model.JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
