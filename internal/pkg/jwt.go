package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

const OrganizerTTL = time.Hour * 24 * 7

type OrganizerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateOrganizerToken 签发主办方 token，线下用 cmd/organizer-token 生成后分发
func GenerateOrganizerToken(secret []byte) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, OrganizerClaims{
		Role: "organizer",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(OrganizerTTL)),
			Subject:   "organizer",
		},
	})
	return t.SignedString(secret)
}

func ParseOrganizer(tokenStr string, secret []byte) (*OrganizerClaims, error) {
	claims := &OrganizerClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.Role != "organizer" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
