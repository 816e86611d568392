package aggregate

import (
    "strings"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

// Classify partitions resolved packages into the configured buckets.
// Every configured bucket key is present in the result, empty or not.
// Buckets are independent: a package may land in several of them, or
// in none. Tag matching is exact; theme matching compares upper-cased
// names, and a package without a resolved theme is skipped for theme
// buckets only.
func Classify(resolved []models.ResolvedPackage, cfg CategoryConfig) map[string][]models.ResolvedPackage {
    buckets := make(map[string][]models.ResolvedPackage, len(cfg.Themes)+2)

    trendingKey := BucketKey("TRENDING")
    topKey := BucketKey("TOP")
    buckets[trendingKey] = filterByTag(resolved, cfg.TrendingTag)
    buckets[topKey] = filterByTag(resolved, cfg.TopTag)

    for _, theme := range cfg.Themes {
        buckets[BucketKey(theme)] = filterByTheme(resolved, theme)
    }
    return buckets
}

func filterByTag(resolved []models.ResolvedPackage, tag string) []models.ResolvedPackage {
    matched := []models.ResolvedPackage{}
    for _, rp := range resolved {
        if rp.HasCategory(tag) {
            matched = append(matched, rp)
        }
    }
    return matched
}

func filterByTheme(resolved []models.ResolvedPackage, themeName string) []models.ResolvedPackage {
    want := strings.ToUpper(strings.TrimSpace(themeName))
    matched := []models.ResolvedPackage{}
    for _, rp := range resolved {
        if rp.Theme == nil {
            continue
        }
        if strings.ToUpper(strings.TrimSpace(rp.Theme.Name)) == want {
            matched = append(matched, rp)
        }
    }
    return matched
}
