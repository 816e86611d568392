package aggregate

import (
    "testing"

    "go.mongodb.org/mongo-driver/bson/primitive"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

func testConfig() CategoryConfig {
    return CategoryConfig{
        TrendingTag: models.CategoryTrending,
        TopTag:      models.CategoryTopDestination,
        Themes:      []string{"HONEYMOON", "HILL STATIONS", "BEACH"},
    }
}

func resolvedWith(categories []string, theme *models.Theme) models.ResolvedPackage {
    return models.ResolvedPackage{
        Package: models.Package{ID: primitive.NewObjectID(), Categories: categories},
        Theme:   theme,
    }
}

func TestBucketKey(t *testing.T) {
    tests := []struct {
        name string
        want string
    }{
        {"TRENDING", "TRENDING_DESTINATIONS"},
        {"TOP", "TOP_DESTINATIONS"},
        {"HILL STATIONS", "HILL_STATIONS_DESTINATIONS"},
        {"beach", "BEACH_DESTINATIONS"},
        {"  HONEYMOON  ", "HONEYMOON_DESTINATIONS"},
    }
    for _, tt := range tests {
        if got := BucketKey(tt.name); got != tt.want {
            t.Errorf("BucketKey(%q) = %q, want %q", tt.name, got, tt.want)
        }
    }
}

func TestClassifyEveryBucketPresent(t *testing.T) {
    cfg := testConfig()
    buckets := Classify(nil, cfg)

    for _, key := range cfg.BucketKeys() {
        if _, ok := buckets[key]; !ok {
            t.Errorf("bucket %s missing from classification", key)
        }
    }
    if len(buckets) != len(cfg.BucketKeys()) {
        t.Errorf("expected %d buckets, got %d", len(cfg.BucketKeys()), len(buckets))
    }
}

func TestClassifyTagMembership(t *testing.T) {
    cfg := testConfig()
    trending := resolvedWith([]string{"trending"}, nil)
    top := resolvedWith([]string{"top destination"}, nil)
    normal := resolvedWith([]string{"normal"}, nil)

    buckets := Classify([]models.ResolvedPackage{trending, top, normal}, cfg)

    if got := len(buckets["TRENDING_DESTINATIONS"]); got != 1 {
        t.Errorf("expected 1 trending package, got %d", got)
    }
    if got := len(buckets["TOP_DESTINATIONS"]); got != 1 {
        t.Errorf("expected 1 top package, got %d", got)
    }
}

func TestClassifyTagMatchIsExact(t *testing.T) {
    cfg := testConfig()
    // "Trending" with a capital T is not the configured tag
    miscased := resolvedWith([]string{"Trending"}, nil)

    buckets := Classify([]models.ResolvedPackage{miscased}, cfg)
    if got := len(buckets["TRENDING_DESTINATIONS"]); got != 0 {
        t.Errorf("tag match should be case-sensitive, got %d members", got)
    }
}

func TestClassifyMultiBucketMembership(t *testing.T) {
    cfg := testConfig()
    beach := &models.Theme{ID: primitive.NewObjectID(), Name: "BEACH"}
    pkg := resolvedWith([]string{"trending"}, beach)

    buckets := Classify([]models.ResolvedPackage{pkg}, cfg)

    if got := len(buckets["TRENDING_DESTINATIONS"]); got != 1 {
        t.Errorf("expected package in TRENDING_DESTINATIONS, got %d", got)
    }
    if got := len(buckets["BEACH_DESTINATIONS"]); got != 1 {
        t.Errorf("expected package in BEACH_DESTINATIONS, got %d", got)
    }
}

func TestClassifyThemeMatchIsCaseNormalized(t *testing.T) {
    cfg := testConfig()
    theme := &models.Theme{ID: primitive.NewObjectID(), Name: "Beach"}
    pkg := resolvedWith(nil, theme)

    buckets := Classify([]models.ResolvedPackage{pkg}, cfg)
    if got := len(buckets["BEACH_DESTINATIONS"]); got != 1 {
        t.Errorf("theme match should be case-normalized, got %d members", got)
    }
}

func TestClassifyUnresolvedThemeSkipsThemeBucketsOnly(t *testing.T) {
    cfg := testConfig()
    pkg := resolvedWith([]string{"trending"}, nil)

    buckets := Classify([]models.ResolvedPackage{pkg}, cfg)

    if got := len(buckets["TRENDING_DESTINATIONS"]); got != 1 {
        t.Errorf("package without theme should still qualify for TRENDING, got %d", got)
    }
    for _, themeName := range cfg.Themes {
        if got := len(buckets[BucketKey(themeName)]); got != 0 {
            t.Errorf("package without theme must not appear in %s, got %d", BucketKey(themeName), got)
        }
    }
}
