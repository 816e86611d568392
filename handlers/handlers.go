package handlers

import (
    "context"

    "github.com/CHARLES-BMTECHX/Tour-Package/aggregate"
    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

// DataReader is the read-only store contract the handlers depend on.
// *store.Store satisfies it; tests substitute an in-memory fake.
type DataReader interface {
    AllAddresses(ctx context.Context) ([]models.Address, error)
    AddressesByFilters(ctx context.Context, country, state, city string) ([]models.Address, error)
    AllPackages(ctx context.Context) ([]models.Package, error)
    PackageByID(ctx context.Context, id string) (*models.Package, error)
    AllThemes(ctx context.Context) ([]models.Theme, error)
    ThemeByID(ctx context.Context, id string) (*models.Theme, error)
    ThemeByName(ctx context.Context, name string) (*models.Theme, error)
    AllUsers(ctx context.Context) ([]models.User, error)
}

var (
    dataStore  DataReader
    categories aggregate.CategoryConfig
)

// Setup wires the store and the category configuration once at startup.
func Setup(reader DataReader, cfg aggregate.CategoryConfig) {
    dataStore = reader
    categories = cfg
}

// fetchResolvedPackages performs the three store reads the aggregation
// needs and joins them in memory. Everything after this is pure
// computation with no further store access.
func fetchResolvedPackages(ctx context.Context) ([]models.ResolvedPackage, []models.Address, []models.Theme, error) {
    packages, err := dataStore.AllPackages(ctx)
    if err != nil {
        return nil, nil, nil, err
    }
    addresses, err := dataStore.AllAddresses(ctx)
    if err != nil {
        return nil, nil, nil, err
    }
    themes, err := dataStore.AllThemes(ctx)
    if err != nil {
        return nil, nil, nil, err
    }
    users, err := dataStore.AllUsers(ctx)
    if err != nil {
        return nil, nil, nil, err
    }
    return aggregate.Resolve(packages, addresses, themes, users), addresses, themes, nil
}
