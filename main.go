package main

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/rs/cors"

    "github.com/CHARLES-BMTECHX/Tour-Package/aggregate"
    "github.com/CHARLES-BMTECHX/Tour-Package/config"
    "github.com/CHARLES-BMTECHX/Tour-Package/handlers"
    "github.com/CHARLES-BMTECHX/Tour-Package/middleware"
    "github.com/CHARLES-BMTECHX/Tour-Package/store"
)

type HealthResponse struct {
    Status   string `json:"status"`
    DBStatus string `json:"db_status"`
    Database string `json:"database,omitempty"`
    Error    string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := HealthResponse{
        Status: "ok",
    }

    if config.MongoClient == nil {
        response.Status = "error"
        response.DBStatus = "not_initialized"
        response.Error = "MongoDB connection not initialized"
    } else if err := config.CheckMongoHealth(); err != nil {
        response.Status = "error"
        response.DBStatus = "connection_error"
        response.Error = err.Error()
    } else {
        response.DBStatus = "connected"
        response.Database = os.Getenv("MONGO_DB_NAME")
    }

    w.Header().Set("Content-Type", "application/json")
    if response.Status != "ok" {
        w.WriteHeader(http.StatusServiceUnavailable)
    }
    json.NewEncoder(w).Encode(response)
}

func registerRoutes(api *mux.Router) {
    // Category aggregation core
    api.HandleFunc("/packages-by-categories", handlers.GetPackagesByCategories).Methods("GET", "OPTIONS")
    api.HandleFunc("/top-destinations-by-state", handlers.GetTopDestinationsByState).Methods("GET", "OPTIONS")
    api.HandleFunc("/cities-by-state/{stateName}", handlers.GetCitiesByState).Methods("GET", "OPTIONS")
    api.HandleFunc("/state-city-by-themename/{themeName}", handlers.GetStateCityByThemeName).Methods("GET", "OPTIONS")
    api.HandleFunc("/all-themes", handlers.GetAllThemes).Methods("GET", "OPTIONS")

    // Plain read endpoints
    api.HandleFunc("/packages", handlers.GetAllPackages).Methods("GET", "OPTIONS")
    api.HandleFunc("/packages/{id}", handlers.GetPackageByID).Methods("GET", "OPTIONS")
    api.HandleFunc("/addresses", handlers.GetAllAddresses).Methods("GET", "OPTIONS")
    api.HandleFunc("/themes/{id}", handlers.GetThemeByID).Methods("GET", "OPTIONS")
}

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    // Load environment variables first
    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    port := os.Getenv("PORT")
    if port == "" {
        port = "3000"
        log.Printf("No PORT environment variable found, using default: %s", port)
    }

    // Initialize MongoDB with retries
    log.Println("Initializing MongoDB...")
    if err := config.ConnectWithRetry(5); err != nil {
        log.Fatalf("Failed to initialize MongoDB: %v", err)
    }
    log.Println("MongoDB initialized successfully")
    defer config.CloseDB()

    // Listing caches (the aggregation endpoints are never cached)
    config.InitCache()

    // Wire the read-only store and the category configuration into the
    // handlers once; requests never re-declare the category list.
    handlers.Setup(store.New(config.MongoDB), aggregate.DefaultCategoryConfig())

    r := mux.NewRouter()

    // CORS configuration for the storefront
    corsHandler := cors.New(cors.Options{
        AllowedOrigins: []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "http://127.0.0.1:5173",
            "https://tour-package.vercel.app",
        },
        AllowedMethods: []string{
            "GET", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Authorization",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        ExposedHeaders: []string{
            "Content-Length",
            "Content-Type",
        },
        AllowCredentials: false,
        MaxAge:           86400,
    })

    // Apply middlewares in correct order
    r.Use(middleware.CORSDebugMiddleware)
    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(middleware.CompressHandler)

    // API routes
    api := r.PathPrefix("/api/v1").Subrouter()
    registerRoutes(api)
    log.Println("Routes registered successfully")

    api.HandleFunc("/health", healthCheck).Methods("GET")

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)

    go func() {
        log.Printf("Starting server on port %s...", port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Printf("Server error: %v", err)
            serverErrors <- err
        }
    }()

    log.Printf("Server is running at http://localhost:%s", port)
    log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

    // Handle graceful shutdown
    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    }
    log.Println("Server stopped")
}
