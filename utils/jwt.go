package utils

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure. Malformed,
// tampered and expired tokens are indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid token")

func GenerateJWT(userID uint, secret string, ttl time.Duration) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "user_id": float64(userID),
        "exp":     time.Now().Add(ttl).Unix(),
    })

    return token.SignedString([]byte(secret))
}

// ParseUserID validates the signature and expiry and extracts the user id.
func ParseUserID(tokenString, secret string) (uint, error) {
    token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
        if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !token.Valid {
        return 0, ErrInvalidToken
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return 0, ErrInvalidToken
    }
    id, ok := claims["user_id"].(float64)
    if !ok || id < 1 {
        return 0, ErrInvalidToken
    }
    return uint(id), nil
}
