package cache

import (
	"context"
	"encoding/json"
	"time"

	"orvela_back_end/internal/database"
	"orvela_back_end/internal/models"
)

const ProductCacheTTL = 10 * time.Minute

// GetProducts récupère une vue du catalogue depuis Redis.
func GetProducts(ctx context.Context, view string) ([]models.Product, bool) {
	if database.Redis == nil {
		return nil, false
	}

	data, err := database.Redis.Get(ctx, "catalog:"+view).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProducts met une vue du catalogue en cache.
func SetProducts(ctx context.Context, view string, products []models.Product) {
	if database.Redis == nil {
		return
	}

	jsonData, _ := json.Marshal(products)
	database.Redis.Set(ctx, "catalog:"+view, jsonData, ProductCacheTTL)
}

// InvalidateCatalog purge les vues en cache après un ajout ou une
// suppression de produit.
func InvalidateCatalog(ctx context.Context) {
	if database.Redis == nil {
		return
	}

	database.Redis.Del(ctx,
		"catalog:allproducts",
		"catalog:newcollections",
		"catalog:popularinwomen",
	)
}
