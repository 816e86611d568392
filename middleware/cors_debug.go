package middleware

import (
    "log"
    "net/http"
    "os"
)

// CORSDebugMiddleware logs origin/preflight traffic when CORS_DEBUG is
// set; storefront CORS issues are otherwise painful to diagnose in
// deployment.
func CORSDebugMiddleware(next http.Handler) http.Handler {
    enabled := os.Getenv("CORS_DEBUG") != ""
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if enabled {
            log.Printf("[CORS Debug] %s %s from Origin: %s", r.Method, r.URL.Path, r.Header.Get("Origin"))
        }

        // For preflight requests
        if r.Method == http.MethodOptions {
            if enabled {
                log.Printf("[CORS Debug] Handling preflight request")
            }
            w.Header().Set("Access-Control-Allow-Origin", r.Header.Get("Origin"))
            w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
            w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, Origin")
            w.WriteHeader(http.StatusOK)
            return
        }

        next.ServeHTTP(w, r)
    })
}
