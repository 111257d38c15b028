package repository

import (
	"context"
	"errors"

	"orvela_back_end/internal/database"
	"orvela_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// =============================================
// USERS
// =============================================

type MongoUserStore struct{}

func (MongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := database.Users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, ErrNotFound
	}
	return user, err
}

func (MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := database.Users().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, ErrNotFound
	}
	return user, err
}

func (MongoUserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	result, err := database.Users().InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := result.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (MongoUserStore) UpdateCart(ctx context.Context, id primitive.ObjectID, cart map[string]int) error {
	_, err := database.Users().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"cartData": cart}},
	)
	return err
}

// =============================================
// PRODUCTS
// =============================================

type MongoProductStore struct{}

func (MongoProductStore) All(ctx context.Context) ([]models.Product, error) {
	return fetchProducts(ctx, bson.M{})
}

func (MongoProductStore) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return fetchProducts(ctx, bson.M{"category": category})
}

func (MongoProductStore) Insert(ctx context.Context, product models.Product) error {
	_, err := database.Products().InsertOne(ctx, product)
	return err
}

func (MongoProductStore) DeleteByID(ctx context.Context, id int64) error {
	_, err := database.Products().DeleteOne(ctx, bson.M{"id": id})
	return err
}

// fetchProducts lit les produits dans l'ordre du store.
func fetchProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := database.Products().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
