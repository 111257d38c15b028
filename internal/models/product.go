package models

import "time"

// Product reprend le schéma historique du catalogue : l'id numérique est
// attribué côté serveur (max existant + 1) et reste l'identifiant exposé
// aux clients, indépendamment de l'_id Mongo.
type Product struct {
	ID        int64     `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Image     string    `bson:"image" json:"image"`
	Category  string    `bson:"category" json:"category"`
	NewPrice  float64   `bson:"new_price" json:"new_price"`
	OldPrice  float64   `bson:"old_price" json:"old_price"`
	Date      time.Time `bson:"date" json:"date"`
	Available bool      `bson:"available" json:"available"`
}
