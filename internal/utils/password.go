package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hash un mot de passe avec bcrypt.
// Les mots de passe ne sont jamais stockés en clair.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compare un mot de passe en clair avec son hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
