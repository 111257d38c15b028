package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"orvela_back_end/internal/models"
	"orvela_back_end/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//
// 🟢 POST /addtocart
//
func AddToCart(c *gin.Context) {
	var input struct {
		ItemID interface{} `json:"itemId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
		return
	}

	key := itemKey(input.ItemID)
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, oid, ok := fetchCartUser(ctx, c)
	if !ok {
		return
	}

	// ⚠️ Lecture puis écriture séparées : deux requêtes simultanées sur le
	// même panier peuvent se marcher dessus (comportement historique conservé).
	user.CartData = applyCartAdd(user.CartData, key)

	if err := userStore.UpdateCart(ctx, oid, user.CartData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

//
// ❌ POST /removefromcart
//
func RemoveFromCart(c *gin.Context) {
	var input struct {
		ItemID interface{} `json:"itemId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
		return
	}

	key := itemKey(input.ItemID)
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, oid, ok := fetchCartUser(ctx, c)
	if !ok {
		return
	}

	cart, changed := applyCartRemove(user.CartData, key)
	if changed {
		if err := userStore.UpdateCart(ctx, oid, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
			return
		}
	}

	// On répond toujours, même quand la quantité était déjà à zéro.
	c.JSON(http.StatusOK, gin.H{"success": true})
}

//
// 🛒 POST /getcart
//
func GetCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, _, ok := fetchCartUser(ctx, c)
	if !ok {
		return
	}

	if user.CartData == nil {
		user.CartData = map[string]int{}
	}
	c.JSON(http.StatusOK, user.CartData)
}

// itemKey normalise l'identifiant d'article reçu : le front envoie un nombre
// JSON (décodé en float64), la clé du panier est sa forme texte — "5" pour 5,
// "5.7" pour 5.7, comme la coercition de clé de l'ancien serveur.
func itemKey(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// applyCartAdd incrémente la quantité d'un article, initialisée à zéro si
// l'emplacement n'existait pas encore.
func applyCartAdd(cart map[string]int, key string) map[string]int {
	if cart == nil {
		cart = map[string]int{}
	}
	cart[key]++
	return cart
}

// applyCartRemove décrémente la quantité d'un article. Une quantité ne
// descend jamais sous zéro : à zéro, le panier reste inchangé.
func applyCartRemove(cart map[string]int, key string) (map[string]int, bool) {
	if cart == nil {
		return map[string]int{}, false
	}
	if cart[key] <= 0 {
		return cart, false
	}
	cart[key]--
	return cart, true
}

// fetchCartUser résout l'identité posée par le middleware et charge
// l'utilisateur. Répond à la place du handler et renvoie ok=false en cas
// d'échec.
func fetchCartUser(ctx context.Context, c *gin.Context) (models.User, primitive.ObjectID, bool) {
	var user models.User

	oid, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return user, oid, false
	}

	user, err = userStore.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return user, oid, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read user"})
		return user, oid, false
	}

	return user, oid, true
}
