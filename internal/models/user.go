package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartSlots est le nombre d'emplacements panier attendus par le front.
const CartSlots = 300

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	CartData map[string]int     `bson:"cartData" json:"cartData"`
	Date     time.Time          `bson:"date" json:"date"`
}

// NewCartData initialise le panier d'un nouvel utilisateur : les clés
// "0" à "299" toutes à zéro.
func NewCartData() map[string]int {
	cart := make(map[string]int, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}
