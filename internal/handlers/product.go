package handlers

import (
	"context"
	"net/http"
	"time"

	"orvela_back_end/internal/cache"
	"orvela_back_end/internal/models"
	"orvela_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🟢 POST /addproduct
//
func AddProduct(c *gin.Context) {
	var input struct {
		Name     string  `json:"name"`
		Image    string  `json:"image"`
		Category string  `json:"category"`
		NewPrice float64 `json:"new_price"`
		OldPrice float64 `json:"old_price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// ⚠️ Lecture puis écriture séparées : deux ajouts simultanés peuvent se
	// voir attribuer le même id (comportement historique conservé).
	products, err := productStore.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not read catalog"})
		return
	}

	product := models.Product{
		ID:        nextProductID(products),
		Name:      input.Name,
		Image:     input.Image,
		Category:  input.Category,
		NewPrice:  input.NewPrice,
		OldPrice:  input.OldPrice,
		Date:      time.Now(),
		Available: true,
	}

	if err := productStore.Insert(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create product"})
		return
	}

	cache.InvalidateCatalog(ctx)
	go services.IndexProduct(product)

	c.JSON(http.StatusOK, gin.H{"success": true, "name": product.Name})
}

// nextProductID attribue le prochain id du catalogue : max existant + 1,
// ou 1 si le catalogue est vide.
func nextProductID(products []models.Product) int64 {
	var max int64
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

//
// ❌ POST /removeproduct
//
func RemoveProduct(c *gin.Context) {
	var input struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// La réponse est un succès même si aucun produit ne correspondait,
	// c'est ce que le front attend.
	if err := productStore.DeleteByID(ctx, input.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not delete product"})
		return
	}

	cache.InvalidateCatalog(ctx)
	go services.RemoveProductFromIndex(input.ID)

	c.JSON(http.StatusOK, gin.H{"success": true, "name": input.Name})
}

//
// 📦 GET /allproducts
//
func AllProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if products, ok := cache.GetProducts(ctx, "allproducts"); ok {
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := productStore.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not read catalog"})
		return
	}

	cache.SetProducts(ctx, "allproducts", products)
	c.JSON(http.StatusOK, products)
}

//
// 🆕 GET /newcollections
//
func NewCollections(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if products, ok := cache.GetProducts(ctx, "newcollections"); ok {
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := productStore.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not read catalog"})
		return
	}

	collection := newCollectionWindow(products)
	cache.SetProducts(ctx, "newcollections", collection)
	c.JSON(http.StatusOK, collection)
}

// newCollectionWindow écarte le tout premier produit du catalogue puis garde
// les 8 derniers du reste (les ajouts les plus récents).
func newCollectionWindow(products []models.Product) []models.Product {
	if len(products) <= 1 {
		return []models.Product{}
	}

	rest := products[1:]
	if len(rest) > 8 {
		rest = rest[len(rest)-8:]
	}
	return rest
}

//
// 👗 GET /popularinwomen
//
func PopularInWomen(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if products, ok := cache.GetProducts(ctx, "popularinwomen"); ok {
		c.JSON(http.StatusOK, products)
		return
	}

	// filtre d'égalité stricte sur la catégorie "women"
	products, err := productStore.ByCategory(ctx, "women")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not read catalog"})
		return
	}

	popular := firstN(products, 4)
	cache.SetProducts(ctx, "popularinwomen", popular)
	c.JSON(http.StatusOK, popular)
}

func firstN(products []models.Product, n int) []models.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}
