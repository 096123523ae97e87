package utils

import (
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs an HS256 token carrying the user's id under the "id" claim.
func GenerateJWT(userID uint, secret string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "id":  userID,
        "exp": time.Now().Add(time.Hour * 72).Unix(),
    })

    return token.SignedString([]byte(secret))
}
