package aggregate

import (
    "testing"

    "go.mongodb.org/mongo-driver/bson/primitive"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

func TestResolveAttachesRelations(t *testing.T) {
    address := models.Address{ID: primitive.NewObjectID(), State: "Kerala", City: "Alleppey"}
    theme := models.Theme{ID: primitive.NewObjectID(), Name: "BEACH"}
    user := models.User{ID: primitive.NewObjectID(), Username: "admin", Email: "admin@example.com"}

    pkg := models.Package{
        ID:        primitive.NewObjectID(),
        Name:      "Kerala Backwaters",
        AddressID: address.ID,
        ThemeID:   theme.ID,
        UserID:    user.ID,
    }

    resolved := Resolve([]models.Package{pkg}, []models.Address{address}, []models.Theme{theme}, []models.User{user})
    if len(resolved) != 1 {
        t.Fatalf("expected 1 resolved package, got %d", len(resolved))
    }

    rp := resolved[0]
    if rp.Address == nil || rp.Address.ID != address.ID {
        t.Errorf("address not attached: %+v", rp.Address)
    }
    if rp.Theme == nil || rp.Theme.Name != "BEACH" {
        t.Errorf("theme not attached: %+v", rp.Theme)
    }
    if rp.User == nil || rp.User.Username != "admin" {
        t.Errorf("user not attached: %+v", rp.User)
    }
}

func TestResolveDanglingReferencesAreNil(t *testing.T) {
    pkg := models.Package{
        ID:        primitive.NewObjectID(),
        Name:      "Orphan",
        AddressID: primitive.NewObjectID(), // matches nothing
        ThemeID:   primitive.NewObjectID(), // matches nothing
    }

    resolved := Resolve([]models.Package{pkg}, nil, nil, nil)
    if len(resolved) != 1 {
        t.Fatalf("expected 1 resolved package, got %d", len(resolved))
    }
    if resolved[0].Address != nil {
        t.Errorf("expected nil address for dangling reference, got %+v", resolved[0].Address)
    }
    if resolved[0].Theme != nil {
        t.Errorf("expected nil theme for dangling reference, got %+v", resolved[0].Theme)
    }
    if resolved[0].User != nil {
        t.Errorf("expected nil user for zero reference, got %+v", resolved[0].User)
    }
}

func TestResolvePreservesInputOrder(t *testing.T) {
    var packages []models.Package
    names := []string{"first", "second", "third", "fourth"}
    for _, name := range names {
        packages = append(packages, models.Package{ID: primitive.NewObjectID(), Name: name})
    }

    resolved := Resolve(packages, nil, nil, nil)
    if len(resolved) != len(names) {
        t.Fatalf("expected %d resolved packages, got %d", len(names), len(resolved))
    }
    for i, rp := range resolved {
        if rp.Name != names[i] {
            t.Errorf("position %d: expected %q, got %q", i, names[i], rp.Name)
        }
    }
}
