package main

import (
	"log"

	"orvela_back_end/internal/config"
	"orvela_back_end/internal/database"
	"orvela_back_end/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🚀 Serveur Orvela lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur démarrage serveur:", err)
	}
}
