package repository

import (
	"context"
	"errors"

	"orvela_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound est renvoyé quand le document demandé n'existe pas.
var ErrNotFound = errors.New("document introuvable")

// UserStore regroupe les accès à la collection users.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	UpdateCart(ctx context.Context, id primitive.ObjectID, cart map[string]int) error
}

// ProductStore regroupe les accès à la collection products.
type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	ByCategory(ctx context.Context, category string) ([]models.Product, error)
	Insert(ctx context.Context, product models.Product) error
	DeleteByID(ctx context.Context, id int64) error
}
