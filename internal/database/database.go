package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Variables Globales ---
var (
	Mongo         *mongo.Database
	Redis         *redis.Client
	ElasticClient *elasticsearch.Client
)

// --- Initialisation ---
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. MongoDB (obligatoire : c'est le store principal)
	connectMongo(ctx)

	// 2. Redis (cache catalogue, optionnel)
	connectRedis(ctx)

	// 3. Elasticsearch (recherche produits, optionnel)
	connectElastic()

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// MONGODB
// =============================================
func connectMongo(ctx context.Context) {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		log.Fatal("❌ DATABASE_URL manquant dans .env")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ MongoDB injoignable:", err)
	}

	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "orvela"
	}

	Mongo = client.Database(dbName)
	log.Println("✅ Connecté à MongoDB :", dbName)
}

// Products retourne la collection des produits du catalogue.
func Products() *mongo.Collection {
	return Mongo.Collection("products")
}

// Users retourne la collection des utilisateurs.
func Users() *mongo.Collection {
	return Mongo.Collection("users")
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️ REDIS_HOST non configuré — cache catalogue désactivé")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// =============================================
// ELASTICSEARCH
// =============================================
func connectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️ ELASTIC_URL non configuré — recherche produits désactivée")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Fatal("❌ Erreur création client Elasticsearch:", err)
	}

	res, err := client.Info()
	if err != nil {
		log.Fatal("❌ Erreur connexion Elasticsearch:", err)
	}
	defer res.Body.Close()

	ElasticClient = client
	log.Println("✅ Connecté à Elasticsearch")
}
