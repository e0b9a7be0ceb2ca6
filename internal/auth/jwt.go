package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/fragpit/songvote/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID int
	Role   model.Role
}

func CreateJWTToken(
	secret string,
	ttl time.Duration,
	p model.Principal,
) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: p.UserID,
		Role:   p.Role,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func PrincipalFromJWTToken(
	secret string,
	tokenString string,
) (model.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return model.Principal{}, errors.New("failed to parse token")
	}

	if !token.Valid {
		return model.Principal{}, errors.New("invalid token")
	}

	if claims.UserID == 0 {
		return model.Principal{}, errors.New("token has no user")
	}

	return model.Principal{UserID: claims.UserID, Role: claims.Role}, nil
}
