package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// JWTSecret retourne le secret de signature des tokens.
// Le secret vit dans .env, jamais en dur dans le code.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3500"
	}
	return port
}

// AllowedOrigins retourne la whitelist CORS depuis .env (origines séparées
// par des virgules). "*" par défaut pour le dev local.
func AllowedOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// UploadDir retourne le dossier de stockage des images uploadées.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "upload/images"
	}
	return dir
}

// PublicBaseURL sert à construire les URLs publiques des images.
func PublicBaseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:" + Port()
	}
	return strings.TrimRight(base, "/")
}
