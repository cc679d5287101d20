package config

import (
    "fmt"
    "time"

    "github.com/patrickmn/go-cache"
)

var (
    // Zone lookup data is a static reference table, safe to cache for hours
    ZoneCache *cache.Cache
)

const (
    zoneCacheDuration   = 12 * time.Hour
    zoneCleanupInterval = 24 * time.Hour
)

func InitCache() {
    ZoneCache = cache.New(zoneCacheDuration, zoneCleanupInterval)
}

func ClearAllCaches() {
    ZoneCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
