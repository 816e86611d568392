package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category tags a package can carry. A package defaults to "normal";
// the other two drive the storefront's trending/top sections.
const (
    CategoryNormal         = "normal"
    CategoryTrending       = "trending"
    CategoryTopDestination = "top destination"
)

type Package struct {
    ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
    Name               string             `bson:"name" json:"name"`
    ThemeID            primitive.ObjectID `bson:"themeId" json:"themeId"`
    UserID             primitive.ObjectID `bson:"userId" json:"userId"`
    Price              float64            `bson:"price" json:"price"`
    Duration           string             `bson:"duration" json:"duration"`
    Inclusions         []string           `bson:"inclusions" json:"inclusions"`
    Images             []string           `bson:"images" json:"images"`
    PackageDescription string             `bson:"packageDescription" json:"packageDescription"`
    Categories         []string           `bson:"categories" json:"categories"`
    AddressID          primitive.ObjectID `bson:"addressId" json:"addressId"`
    BestMonth          string             `bson:"bestMonth" json:"bestMonth"`
}

// HasCategory reports whether the package carries the given tag.
// Matching is exact; tags are stored lower-case.
func (p Package) HasCategory(tag string) bool {
    for _, c := range p.Categories {
        if c == tag {
            return true
        }
    }
    return false
}

// ResolvedPackage is a Package with its references looked up. A nil
// Address, Theme or User means the reference did not resolve; callers
// must treat that as normal data, not an error. Resolved packages live
// for a single request only.
type ResolvedPackage struct {
    Package `bson:",inline"`
    Address *Address `json:"address"`
    Theme   *Theme   `json:"theme"`
    User    *User    `json:"user"`
}

// PackageSummary is the per-package shape embedded in city lists.
type PackageSummary struct {
    PackageID   string   `json:"packageId"`
    Name        string   `json:"name"`
    Theme       *string  `json:"theme"`
    User        *User    `json:"user"`
    Price       float64  `json:"price"`
    Duration    string   `json:"duration"`
    Inclusions  []string `json:"inclusions"`
    Images      []string `json:"images"`
    Description string   `json:"description"`
    BestMonth   string   `json:"bestMonth"`
}

// Summary flattens a resolved package for transmission. Unresolved
// theme and user references come through as null.
func (rp ResolvedPackage) Summary() PackageSummary {
    summary := PackageSummary{
        PackageID:   rp.ID.Hex(),
        Name:        rp.Name,
        User:        rp.User,
        Price:       rp.Price,
        Duration:    rp.Duration,
        Inclusions:  rp.Inclusions,
        Images:      rp.Images,
        Description: rp.PackageDescription,
        BestMonth:   rp.BestMonth,
    }
    if rp.Theme != nil {
        name := rp.Theme.Name
        summary.Theme = &name
    }
    return summary
}
