package aggregate

import (
    "go.mongodb.org/mongo-driver/bson/primitive"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

// Resolve joins each package to its address, theme and user by ObjectID.
// One resolved package is produced per input package, in input order.
// A reference that matches nothing stays nil; dangling references are
// normal data here, never an error.
func Resolve(packages []models.Package, addresses []models.Address, themes []models.Theme, users []models.User) []models.ResolvedPackage {
    addressByID := make(map[primitive.ObjectID]*models.Address, len(addresses))
    for i := range addresses {
        addressByID[addresses[i].ID] = &addresses[i]
    }
    themeByID := make(map[primitive.ObjectID]*models.Theme, len(themes))
    for i := range themes {
        themeByID[themes[i].ID] = &themes[i]
    }
    userByID := make(map[primitive.ObjectID]*models.User, len(users))
    for i := range users {
        userByID[users[i].ID] = &users[i]
    }

    resolved := make([]models.ResolvedPackage, 0, len(packages))
    for _, pkg := range packages {
        rp := models.ResolvedPackage{Package: pkg}
        if !pkg.AddressID.IsZero() {
            rp.Address = addressByID[pkg.AddressID]
        }
        if !pkg.ThemeID.IsZero() {
            rp.Theme = themeByID[pkg.ThemeID]
        }
        if !pkg.UserID.IsZero() {
            rp.User = userByID[pkg.UserID]
        }
        resolved = append(resolved, rp)
    }
    return resolved
}
