package handlers

import (
    "context"
    "log"
    "net/http"

    "github.com/gorilla/mux"

    "github.com/CHARLES-BMTECHX/Tour-Package/aggregate"
    "github.com/CHARLES-BMTECHX/Tour-Package/config"
)

// GetCitiesByState serves the single-state view: the state's details
// and its packages grouped per city. 404 when no address carries the
// state name.
func GetCitiesByState(w http.ResponseWriter, r *http.Request) {
    stateName := mux.Vars(r)["stateName"]
    log.Printf("GetCitiesByState: Starting request handling for state: %s", stateName)

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    resolved, addresses, _, err := fetchResolvedPackages(ctx)
    if err != nil {
        log.Printf("GetCitiesByState: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    view, found := aggregate.CitiesByState(resolved, addresses, stateName)
    if !found {
        sendErrorResponse(w, "No destinations found for state: "+stateName, http.StatusNotFound)
        return
    }
    log.Printf("GetCitiesByState: %d cities found for state %s", view.Cities.Len(), stateName)

    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "message":      "Cities fetched successfully",
        "stateDetails": view.StateDetails,
        "cities":       view.Cities,
    })
}

// GetAllAddresses is the plain address listing with optional country,
// state and city query filters. Cached briefly; not part of the
// aggregation core.
func GetAllAddresses(w http.ResponseWriter, r *http.Request) {
    country := r.URL.Query().Get("country")
    state := r.URL.Query().Get("state")
    city := r.URL.Query().Get("city")

    cacheKey := config.GetCacheKey("addresses", country, state, city)
    if cached, found := config.AddressCache.Get(cacheKey); found {
        log.Printf("GetAllAddresses: serving from cache")
        sendJSONResponse(w, http.StatusOK, cached)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    addresses, err := dataStore.AddressesByFilters(ctx, country, state, city)
    if err != nil {
        log.Printf("GetAllAddresses: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    payload := map[string]interface{}{
        "message":   "Addresses fetched successfully",
        "addresses": addresses,
        "count":     len(addresses),
    }
    config.AddressCache.SetDefault(cacheKey, payload)
    sendJSONResponse(w, http.StatusOK, payload)
}
