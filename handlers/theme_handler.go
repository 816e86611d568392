package handlers

import (
    "context"
    "errors"
    "log"
    "net/http"

    "github.com/gorilla/mux"

    "github.com/CHARLES-BMTECHX/Tour-Package/aggregate"
    "github.com/CHARLES-BMTECHX/Tour-Package/store"
)

// GetAllThemes serves the theme listing with per-theme counts of valid
// packages (theme and address both resolved).
func GetAllThemes(w http.ResponseWriter, r *http.Request) {
    log.Printf("GetAllThemes: Starting request handling")

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    resolved, _, themes, err := fetchResolvedPackages(ctx)
    if err != nil {
        log.Printf("GetAllThemes: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    data := aggregate.ThemeCounts(resolved, themes)
    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "message": "Themes fetched successfully",
        "data":    data,
    })
}

// GetStateCityByThemeName serves the single-theme view: theme metadata
// plus the state → city tree of its packages. 404 for an unknown theme
// name (matched case-insensitively).
func GetStateCityByThemeName(w http.ResponseWriter, r *http.Request) {
    themeName := mux.Vars(r)["themeName"]
    log.Printf("GetStateCityByThemeName: Starting request handling for theme: %s", themeName)

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    theme, err := dataStore.ThemeByName(ctx, themeName)
    if errors.Is(err, store.ErrNotFound) {
        sendErrorResponse(w, "Theme not found: "+themeName, http.StatusNotFound)
        return
    }
    if err != nil {
        log.Printf("GetStateCityByThemeName: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    resolved, _, _, err := fetchResolvedPackages(ctx)
    if err != nil {
        log.Printf("GetStateCityByThemeName: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    view := aggregate.StateCityByTheme(resolved, *theme)
    log.Printf("GetStateCityByThemeName: %d valid packages for theme %s", view.ThemeDetails.ValidPackageCount, theme.Name)

    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "message":      "Theme destinations fetched successfully",
        "themeDetails": view.ThemeDetails,
        "states":       view.States,
    })
}

// GetThemeByID returns one theme document.
func GetThemeByID(w http.ResponseWriter, r *http.Request) {
    id := mux.Vars(r)["id"]

    ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
    defer cancel()

    theme, err := dataStore.ThemeByID(ctx, id)
    if errors.Is(err, store.ErrNotFound) {
        sendErrorResponse(w, "Theme not found: "+id, http.StatusNotFound)
        return
    }
    if err != nil {
        log.Printf("GetThemeByID: store read failed: %v", err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }

    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "message": "Theme fetched successfully",
        "theme":   theme,
    })
}
