package aggregate

import (
    "strings"

    "github.com/CHARLES-BMTECHX/Tour-Package/models"
)

// CategoryConfig drives the classifier. It is built once at startup and
// shared by every request; handlers never re-declare the category list.
type CategoryConfig struct {
    TrendingTag string
    TopTag      string
    Themes      []string
}

// DefaultCategoryConfig matches the categories the storefront renders.
func DefaultCategoryConfig() CategoryConfig {
    themes := make([]string, len(models.ThemeNames))
    copy(themes, models.ThemeNames)
    return CategoryConfig{
        TrendingTag: models.CategoryTrending,
        TopTag:      models.CategoryTopDestination,
        Themes:      themes,
    }
}

// BucketKey maps a category or theme identifier to its response key,
// e.g. "HILL STATIONS" becomes "HILL_STATIONS_DESTINATIONS".
func BucketKey(name string) string {
    key := strings.ToUpper(strings.TrimSpace(name))
    key = strings.ReplaceAll(key, " ", "_")
    return key + "_DESTINATIONS"
}

// BucketKeys returns every bucket key in presentation order: trending,
// top, then the configured themes.
func (c CategoryConfig) BucketKeys() []string {
    keys := make([]string, 0, len(c.Themes)+2)
    keys = append(keys, BucketKey("TRENDING"), BucketKey("TOP"))
    for _, theme := range c.Themes {
        keys = append(keys, BucketKey(theme))
    }
    return keys
}
