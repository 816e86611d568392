package handlers

import (
    "context"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/gorilla/mux"

    "github.com/CHARLES-BMTECHX/Tour-Package/aggregate"
    "github.com/CHARLES-BMTECHX/Tour-Package/config"
    "github.com/CHARLES-BMTECHX/Tour-Package/models"
    "github.com/CHARLES-BMTECHX/Tour-Package/store"
)

const aggregationTimeout = 10 * time.Second

// GetPackagesByCategories serves the storefront home payload: every
// configured bucket (trending, top, one per theme) folded into its
// state → city tree. Recomputed from the store on every request.
func GetPackagesByCategories(w http.ResponseWriter, r *http.Request) {
    log.Printf("GetPackagesByCategories: Starting request handling")

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    resolved, _, _, err := fetchResolvedPackages(ctx)
    if err != nil {
        log.Printf("GetPackagesByCategories: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    data := aggregate.Compose(resolved, categories)
    log.Printf("GetPackagesByCategories: composed %d buckets from %d packages", len(data.Keys()), len(resolved))

    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "message": "Packages grouped by categories fetched successfully",
        "data":    data,
    })
}

// GetTopDestinationsByState serves only the "top destination" bucket,
// grouped by state.
func GetTopDestinationsByState(w http.ResponseWriter, r *http.Request) {
    log.Printf("GetTopDestinationsByState: Starting request handling")

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    resolved, _, _, err := fetchResolvedPackages(ctx)
    if err != nil {
        log.Printf("GetTopDestinationsByState: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    data := aggregate.TopDestinations(resolved, categories)
    log.Printf("GetTopDestinationsByState: grouped %d states", data.Len())

    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "message": "Top destinations grouped by state fetched successfully",
        "data":    data,
    })
}

// GetAllPackages is the plain listing: every package with its
// relations attached. Packages with dangling address references are
// included here even though the geo views exclude them. Responses are
// cached briefly; this endpoint is not part of the aggregation core.
func GetAllPackages(w http.ResponseWriter, r *http.Request) {
    cacheKey := config.GetCacheKey("packages", "all")
    if cached, found := config.PackageCache.Get(cacheKey); found {
        log.Printf("GetAllPackages: serving from cache")
        sendJSONResponse(w, http.StatusOK, cached)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    resolved, _, _, err := fetchResolvedPackages(ctx)
    if err != nil {
        log.Printf("GetAllPackages: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    if len(resolved) == 0 {
        sendErrorResponse(w, "No packages found", http.StatusNotFound)
        return
    }

    payload := map[string]interface{}{
        "message":  "Packages fetched successfully",
        "packages": resolved,
        "count":    len(resolved),
    }
    config.PackageCache.SetDefault(cacheKey, payload)
    sendJSONResponse(w, http.StatusOK, payload)
}

// GetPackageByID returns one package with its relations attached.
func GetPackageByID(w http.ResponseWriter, r *http.Request) {
    id := mux.Vars(r)["id"]

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    pkg, err := dataStore.PackageByID(ctx, id)
    if errors.Is(err, store.ErrNotFound) {
        sendErrorResponse(w, "Package not found: "+id, http.StatusNotFound)
        return
    }
    if err != nil {
        log.Printf("GetPackageByID: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    addresses, err := dataStore.AllAddresses(ctx)
    if err != nil {
        log.Printf("GetPackageByID: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }
    themes, err := dataStore.AllThemes(ctx)
    if err != nil {
        log.Printf("GetPackageByID: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }
    users, err := dataStore.AllUsers(ctx)
    if err != nil {
        log.Printf("GetPackageByID: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    resolved := aggregate.Resolve([]models.Package{*pkg}, addresses, themes, users)
    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "message": "Package fetched successfully",
        "package": resolved[0],
    })
}
