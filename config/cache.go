package config

import (
    "fmt"
    "time"

    "github.com/patrickmn/go-cache"
)

var (
    // Caches for the plain listing endpoints only. The category
    // aggregation is never cached: it recomputes from the store on
    // every request.
    PackageCache *cache.Cache
    AddressCache *cache.Cache
)

const (
    // Cache durations
    packageCacheDuration = 5 * time.Minute
    addressCacheDuration = 10 * time.Minute

    // Cleanup intervals
    packageCleanupInterval = 10 * time.Minute
    addressCleanupInterval = 20 * time.Minute
)

func InitCache() {
    PackageCache = cache.New(packageCacheDuration, packageCleanupInterval)
    AddressCache = cache.New(addressCacheDuration, addressCleanupInterval)
}

func ClearAllCaches() {
    PackageCache.Flush()
    AddressCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
