package store

import (
    "context"
    "errors"
    "fmt"
    "regexp"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

var (
    // ErrStoreUnavailable wraps any failed read against the document
    // store. Retry, if any, belongs to the connection layer in config.
    ErrStoreUnavailable = errors.New("store unavailable")

    // ErrNotFound is returned by single-entity lookups that match
    // nothing.
    ErrNotFound = errors.New("not found")
)

// Store exposes the read-only collection accessors the aggregation
// core depends on. All writes happen elsewhere (admin CRUD).
type Store struct {
    db *mongo.Database
}

func New(db *mongo.Database) *Store {
    return &Store{db: db}
}

// AllAddresses returns every address document.
func (s *Store) AllAddresses(ctx context.Context) ([]models.Address, error) {
    return s.findAddresses(ctx, bson.M{})
}

// AddressesByFilters returns addresses matching the given country,
// state and city; empty values are ignored.
func (s *Store) AddressesByFilters(ctx context.Context, country, state, city string) ([]models.Address, error) {
    filter := bson.M{}
    if country != "" {
        filter["country"] = country
    }
    if state != "" {
        filter["state"] = state
    }
    if city != "" {
        filter["city"] = city
    }
    return s.findAddresses(ctx, filter)
}

func (s *Store) findAddresses(ctx context.Context, filter bson.M) ([]models.Address, error) {
    cursor, err := s.db.Collection("addresses").Find(ctx, filter)
    if err != nil {
        return nil, fmt.Errorf("%w: querying addresses: %v", ErrStoreUnavailable, err)
    }
    defer cursor.Close(ctx)

    var addresses []models.Address
    if err := cursor.All(ctx, &addresses); err != nil {
        return nil, fmt.Errorf("%w: reading addresses: %v", ErrStoreUnavailable, err)
    }
    return addresses, nil
}

// AllPackages returns every package document.
func (s *Store) AllPackages(ctx context.Context) ([]models.Package, error) {
    cursor, err := s.db.Collection("packages").Find(ctx, bson.M{})
    if err != nil {
        return nil, fmt.Errorf("%w: querying packages: %v", ErrStoreUnavailable, err)
    }
    defer cursor.Close(ctx)

    var packages []models.Package
    if err := cursor.All(ctx, &packages); err != nil {
        return nil, fmt.Errorf("%w: reading packages: %v", ErrStoreUnavailable, err)
    }
    return packages, nil
}

// PackageByID returns one package, or ErrNotFound.
func (s *Store) PackageByID(ctx context.Context, id string) (*models.Package, error) {
    objectID, err := primitive.ObjectIDFromHex(id)
    if err != nil {
        return nil, fmt.Errorf("%w: package %s", ErrNotFound, id)
    }

    var pkg models.Package
    err = s.db.Collection("packages").FindOne(ctx, bson.M{"_id": objectID}).Decode(&pkg)
    if err == mongo.ErrNoDocuments {
        return nil, fmt.Errorf("%w: package %s", ErrNotFound, id)
    }
    if err != nil {
        return nil, fmt.Errorf("%w: reading package %s: %v", ErrStoreUnavailable, id, err)
    }
    return &pkg, nil
}

// AllThemes returns every theme document.
func (s *Store) AllThemes(ctx context.Context) ([]models.Theme, error) {
    cursor, err := s.db.Collection("themes").Find(ctx, bson.M{})
    if err != nil {
        return nil, fmt.Errorf("%w: querying themes: %v", ErrStoreUnavailable, err)
    }
    defer cursor.Close(ctx)

    var themes []models.Theme
    if err := cursor.All(ctx, &themes); err != nil {
        return nil, fmt.Errorf("%w: reading themes: %v", ErrStoreUnavailable, err)
    }
    return themes, nil
}

// ThemeByID returns one theme, or ErrNotFound.
func (s *Store) ThemeByID(ctx context.Context, id string) (*models.Theme, error) {
    objectID, err := primitive.ObjectIDFromHex(id)
    if err != nil {
        return nil, fmt.Errorf("%w: theme %s", ErrNotFound, id)
    }

    var theme models.Theme
    err = s.db.Collection("themes").FindOne(ctx, bson.M{"_id": objectID}).Decode(&theme)
    if err == mongo.ErrNoDocuments {
        return nil, fmt.Errorf("%w: theme %s", ErrNotFound, id)
    }
    if err != nil {
        return nil, fmt.Errorf("%w: reading theme %s: %v", ErrStoreUnavailable, id, err)
    }
    return &theme, nil
}

// ThemeByName returns one theme matched case-insensitively by name,
// or ErrNotFound.
func (s *Store) ThemeByName(ctx context.Context, name string) (*models.Theme, error) {
    filter := bson.M{"name": primitive.Regex{
        Pattern: "^" + regexp.QuoteMeta(name) + "$",
        Options: "i",
    }}

    var theme models.Theme
    err := s.db.Collection("themes").FindOne(ctx, filter).Decode(&theme)
    if err == mongo.ErrNoDocuments {
        return nil, fmt.Errorf("%w: theme %s", ErrNotFound, name)
    }
    if err != nil {
        return nil, fmt.Errorf("%w: reading theme %s: %v", ErrStoreUnavailable, name, err)
    }
    return &theme, nil
}

// AllUsers returns the read-only user projection for every user.
func (s *Store) AllUsers(ctx context.Context) ([]models.User, error) {
    opts := options.Find().SetProjection(bson.M{
        "username": 1,
        "email":    1,
    })
    cursor, err := s.db.Collection("users").Find(ctx, bson.M{}, opts)
    if err != nil {
        return nil, fmt.Errorf("%w: querying users: %v", ErrStoreUnavailable, err)
    }
    defer cursor.Close(ctx)

    var users []models.User
    if err := cursor.All(ctx, &users); err != nil {
        return nil, fmt.Errorf("%w: reading users: %v", ErrStoreUnavailable, err)
    }
    return users, nil
}
