package middleware

import (
	"errors"
	"strings"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

var errInvalidToken = errors.New("invalid token")

// parseBearer validates an "Authorization: Bearer <token>" header value and
// returns the user id it was issued for.
func parseBearer(authHeader, secret string) (uint, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return 0, errors.New("invalid Authorization header format")
	}

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, errInvalidToken
	}
	return claims.UserID, nil
}
