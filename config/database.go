package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client             *mongo.Client
	UserCollection     *mongo.Collection
	ItemCollection     *mongo.Collection
	CategoryCollection *mongo.Collection
	CartCollection     *mongo.Collection
	BillCollection     *mongo.Collection
)

func ConnectDatabase() {
	client, err := mongo.NewClient(options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "teapos"
	}

	Client = client
	UserCollection = client.Database(dbName).Collection("users")
	ItemCollection = client.Database(dbName).Collection("items")
	CategoryCollection = client.Database(dbName).Collection("category")
	CartCollection = client.Database(dbName).Collection("carts")
	BillCollection = client.Database(dbName).Collection("bills")
	log.Println("Connected to MongoDB")
}
