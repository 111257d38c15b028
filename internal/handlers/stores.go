package handlers

import "orvela_back_end/internal/repository"

// Stores substituables en test : par défaut les implémentations MongoDB.
var (
	userStore    repository.UserStore    = repository.MongoUserStore{}
	productStore repository.ProductStore = repository.MongoProductStore{}
)
