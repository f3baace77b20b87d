package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "traintrack"

var ErrInvalidToken = errors.New("invalid token")

type accessTokenClaims struct {
	UserID int `json:"uid"`
	jwt.RegisteredClaims
}

// TokenPair is what a successful login or refresh yields: a short
// lived signed access token and a long lived opaque refresh token.
type TokenPair struct {
	AccessToken     string    `json:"accessToken"`
	RefreshToken    string    `json:"refreshToken"`
	AccessExpiresAt time.Time `json:"accessExpiresAt"`
}

func createAccessToken(secret []byte, userID int, username string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(ttl)
	claims := accessTokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

func parseAccessToken(secret []byte, token string) (userID int, err error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&accessTokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*accessTokenClaims)
	if !ok || !parsed.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
