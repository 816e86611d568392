package middleware

import (
    "net/http"

    "github.com/gorilla/handlers"
)

// CompressHandler gzips responses for clients that send an
// Accept-Encoding header; the aggregation payloads are large and
// highly compressible.
func CompressHandler(next http.Handler) http.Handler {
    return handlers.CompressHandler(next)
}
