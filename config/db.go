package config

import (
    "context"
    "fmt"
    "log"
    "os"
    "time"

    "github.com/joho/godotenv"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "go.mongodb.org/mongo-driver/mongo/readconcern"
    "go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
    MongoDB     *mongo.Database
    MongoClient *mongo.Client
)

// LoadEnv loads environment variables from a .env file
func LoadEnv() error {
    // Try multiple possible locations for .env file
    possiblePaths := []string{
        ".env",                 // Current directory
        "../.env",              // Parent directory
        os.Getenv("TOUR_ENV"),  // Environment-specified path
    }

    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            log.Printf("Loading environment variables from %s", path)
            return godotenv.Load(path)
        }
    }

    // If no .env file found, check if MONGO_URI is already set in environment
    if uri := os.Getenv("MONGO_URI"); uri != "" {
        return nil
    }
    return fmt.Errorf("no .env file found and MONGO_URI not set in environment")
}

// ConnectWithRetry attempts to connect to MongoDB with retries
func ConnectWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = connectMongo(getMongoURI())
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to MongoDB (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(5 * time.Second)
    }
    return fmt.Errorf("failed to connect after %d attempts: %v", maxRetries, err)
}

// connectMongo initializes the MongoDB connection
func connectMongo(uri string) error {
    clientOptions := options.Client().ApplyURI(uri).
        SetMaxPoolSize(100).
        SetMinPoolSize(10).
        SetConnectTimeout(10*time.Second).
        SetServerSelectionTimeout(10*time.Second).
        SetSocketTimeout(30*time.Second).
        SetRetryReads(true).
        SetMaxConnIdleTime(60*time.Minute).
        SetReadConcern(readconcern.Majority()).
        SetReadPreference(readpref.Primary())

    ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
    defer cancel()

    var err error
    MongoClient, err = mongo.Connect(ctx, clientOptions)
    if err != nil {
        return fmt.Errorf("error connecting to MongoDB: %v", err)
    }

    if err = MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("error pinging MongoDB: %v", err)
    }

    MongoDB = MongoClient.Database(getMongoDBName())
    log.Printf("Successfully connected to MongoDB database: %s", getMongoDBName())

    if err := createIndexes(ctx); err != nil {
        return fmt.Errorf("error creating indexes: %v", err)
    }

    return nil
}

func createIndexes(ctx context.Context) error {
    // Package collection indexes: the aggregation reads join packages
    // to addresses and themes, and filter by category tags
    packageCollection := MongoDB.Collection("packages")
    packageIndexes := []mongo.IndexModel{
        {
            Keys: bson.D{
                {Key: "addressId", Value: 1},
            },
            Options: options.Index().SetName("package_address_idx"),
        },
        {
            Keys: bson.D{
                {Key: "themeId", Value: 1},
            },
            Options: options.Index().SetName("package_theme_idx"),
        },
        {
            Keys: bson.D{
                {Key: "categories", Value: 1},
            },
            Options: options.Index().SetName("package_categories_idx"),
        },
    }

    _, err := packageCollection.Indexes().CreateMany(ctx, packageIndexes)
    if err != nil {
        return fmt.Errorf("error creating package indexes: %v", err)
    }
    log.Printf("Successfully created package indexes")

    // Address collection: state lookups back the single-state view
    addressCollection := MongoDB.Collection("addresses")
    addressIndexes := []mongo.IndexModel{
        {
            Keys: bson.D{
                {Key: "state", Value: 1},
                {Key: "city", Value: 1},
            },
            Options: options.Index().SetName("address_state_city_idx"),
        },
    }

    _, err = addressCollection.Indexes().CreateMany(ctx, addressIndexes)
    if err != nil {
        return fmt.Errorf("error creating address indexes: %v", err)
    }
    log.Printf("Successfully created address indexes")

    // Theme names are unique by contract
    themeCollection := MongoDB.Collection("themes")
    themeIndexes := []mongo.IndexModel{
        {
            Keys: bson.D{
                {Key: "name", Value: 1},
            },
            Options: options.Index().SetUnique(true).SetName("theme_name_idx"),
        },
    }

    _, err = themeCollection.Indexes().CreateMany(ctx, themeIndexes)
    if err != nil {
        return fmt.Errorf("error creating theme indexes: %v", err)
    }
    log.Printf("Successfully created theme indexes")

    return nil
}

// CheckMongoHealth pings the store with a short deadline
func CheckMongoHealth() error {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("MongoDB health check failed: %v", err)
    }
    return nil
}

// Graceful shutdown
func CloseDB() {
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if MongoClient != nil {
        if err := MongoClient.Disconnect(ctx); err != nil {
            log.Printf("Error closing MongoDB connection: %v", err)
        }
    }
}
