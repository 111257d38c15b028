package utils

import (
	"errors"
	"fmt"

	"orvela_back_end/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signe un token HS256 dont le payload reprend le format
// historique {user: {id}} attendu par le front.
func GenerateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]interface{}{
			"id": userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

// ParseToken vérifie la signature et extrait l'id utilisateur du payload.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return config.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("token invalide")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("claims invalides")
	}

	userClaim, ok := claims["user"].(map[string]interface{})
	if !ok {
		return "", errors.New("payload user manquant")
	}

	userID, ok := userClaim["id"].(string)
	if !ok || userID == "" {
		return "", errors.New("user id manquant dans le token")
	}

	return userID, nil
}
