package handlers

import (
	"context"
	"testing"

	"orvela_back_end/internal/models"
	"orvela_back_end/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserStore simule la collection users en mémoire.
type fakeUserStore struct {
	usersByEmail map[string]models.User
	usersByID    map[primitive.ObjectID]models.User
	inserted     []models.User
	carts        map[primitive.ObjectID]map[string]int
	findErr      error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		usersByEmail: map[string]models.User{},
		usersByID:    map[primitive.ObjectID]models.User{},
		carts:        map[primitive.ObjectID]map[string]int{},
	}
}

func (f *fakeUserStore) seed(user models.User) primitive.ObjectID {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
	return user.ID
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	if f.findErr != nil {
		return models.User{}, f.findErr
	}
	user, ok := f.usersByEmail[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	if f.findErr != nil {
		return models.User{}, f.findErr
	}
	user, ok := f.usersByID[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user models.User) (primitive.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.inserted = append(f.inserted, user)
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserStore) UpdateCart(_ context.Context, id primitive.ObjectID, cart map[string]int) error {
	f.carts[id] = cart
	return nil
}

// fakeProductStore simule la collection products en mémoire. ByCategory
// applique la même égalité stricte que le filtre Mongo.
type fakeProductStore struct {
	products          []models.Product
	inserted          []models.Product
	deleted           []int64
	requestedCategory string
}

func (f *fakeProductStore) All(_ context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeProductStore) ByCategory(_ context.Context, category string) ([]models.Product, error) {
	f.requestedCategory = category
	matches := []models.Product{}
	for _, p := range f.products {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (f *fakeProductStore) Insert(_ context.Context, product models.Product) error {
	f.inserted = append(f.inserted, product)
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductStore) DeleteByID(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// swapStores installe des stores de test et restaure les stores Mongo à la
// fin du test.
func swapStores(t *testing.T, us repository.UserStore, ps repository.ProductStore) {
	t.Helper()

	prevUsers, prevProducts := userStore, productStore
	if us != nil {
		userStore = us
	}
	if ps != nil {
		productStore = ps
	}
	t.Cleanup(func() {
		userStore, productStore = prevUsers, prevProducts
	})
}
