package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 72 * time.Hour

var ErrInvalidSession = errors.New("invalid session token")

// GenerateSessionToken mints the signed session token handed to the client
// as a cookie. It carries the authenticated identity and nothing else.
func GenerateSessionToken(userID uint, name string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   userID,
		"name":     name,
		"loggedIn": true,
		"exp":      time.Now().Add(sessionTTL).Unix(),
	})
	return token.SignedString(secret)
}

// ParseSessionToken validates a session token and returns the user id and
// display name it was minted for.
func ParseSessionToken(tokenString string, secret []byte) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidSession
	}
	if loggedIn, _ := claims["loggedIn"].(bool); !loggedIn {
		return 0, "", ErrInvalidSession
	}

	id, ok := claims["userId"].(float64)
	if !ok || id <= 0 {
		return 0, "", ErrInvalidSession
	}
	name, _ := claims["name"].(string)

	return uint(id), name, nil
}
