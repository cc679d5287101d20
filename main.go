package main

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/rs/cors"

    "github.com/essexuzx/APAN5400-YellowCabProject/config"
    "github.com/essexuzx/APAN5400-YellowCabProject/handlers"
    "github.com/essexuzx/APAN5400-YellowCabProject/middleware"
)

type HealthResponse struct {
    Status   string `json:"status"`
    Postgres string `json:"postgres"`
    Mongo    string `json:"mongo"`
    Error    string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := HealthResponse{
        Status:   "ok",
        Postgres: "connected",
        Mongo:    "connected",
    }

    if err := config.CheckPostgresHealth(); err != nil {
        response.Status = "error"
        response.Postgres = "connection_error"
        response.Error = fmt.Sprintf("PostgreSQL ping failed: %v", err)
    }

    if err := config.CheckMongoHealth(); err != nil {
        response.Status = "error"
        response.Mongo = "connection_error"
        if response.Error != "" {
            response.Error += "; "
        }
        response.Error += fmt.Sprintf("MongoDB ping failed: %v", err)
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
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
        port = "5001"
        log.Printf("No PORT environment variable found, using default: %s", port)
    }

    // Initialize the trip store
    log.Println("Initializing PostgreSQL database...")
    if err := config.InitDBWithRetry(5); err != nil {
        log.Fatalf("Failed to initialize PostgreSQL: %v", err)
    }
    log.Println("PostgreSQL database initialized successfully")

    // Initialize the complaint store
    log.Println("Connecting to MongoDB...")
    if err := config.ConnectMongoWithRetry(5); err != nil {
        log.Fatalf("Failed to connect to MongoDB: %v", err)
    }
    defer config.CloseDB()

    config.InitCache()

    r := mux.NewRouter()

    corsHandler := cors.New(cors.Options{
        AllowedOrigins: []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "http://localhost:5001",
            "http://127.0.0.1:5001",
        },
        AllowedMethods: []string{
            "GET", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        MaxAge: 86400,
    })

    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)

    api := r.PathPrefix("/api").Subrouter()
    registerRoutes(api)
    log.Println("Routes registered successfully")

    api.HandleFunc("/health/detailed", healthCheck).Methods("GET")

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      60 * time.Second,
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

    log.Printf("Company dashboard API: http://localhost:%s/api/company", port)
    log.Printf("Public dashboard API:  http://localhost:%s/api/public", port)
    log.Printf("Health check endpoint: http://localhost:%s/api/health", port)

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
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(api *mux.Router) {
    // Company dashboard routes
    api.HandleFunc("/company/revenue-summary", handlers.GetRevenueSummary).Methods("GET", "OPTIONS")
    api.HandleFunc("/company/revenue-by-distance", handlers.RevenueByDistanceRemoved).Methods("GET", "OPTIONS")
    api.HandleFunc("/company/zones", handlers.GetZones).Methods("GET", "OPTIONS")
    api.HandleFunc("/company/fare-estimate", handlers.GetFareEstimate).Methods("GET", "OPTIONS")
    api.HandleFunc("/company/payment-breakdown", handlers.GetPaymentBreakdown).Methods("GET", "OPTIONS")
    api.HandleFunc("/company/top-zones", handlers.GetTopZones).Methods("GET", "OPTIONS")
    api.HandleFunc("/company/surcharges", handlers.GetSurcharges).Methods("GET", "OPTIONS")
    api.HandleFunc("/company/hourly-demand", handlers.GetHourlyDemand).Methods("GET", "OPTIONS")

    // Public dashboard routes
    api.HandleFunc("/public/busiest-zones", handlers.GetBusiestZones).Methods("GET", "OPTIONS")
    api.HandleFunc("/public/popular-routes", handlers.GetPopularRoutes).Methods("GET", "OPTIONS")
    api.HandleFunc("/public/demand-by-hour", handlers.GetDemandByHour).Methods("GET", "OPTIONS")
    api.HandleFunc("/public/demand-by-day", handlers.GetDemandByDay).Methods("GET", "OPTIONS")
    api.HandleFunc("/public/wait-times", handlers.GetWaitTimes).Methods("GET", "OPTIONS")
    api.HandleFunc("/public/zone-activity", handlers.GetZoneActivity).Methods("GET", "OPTIONS")

    // 311 complaints routes
    api.HandleFunc("/complaints/heatmap", handlers.GetComplaintsHeatmap).Methods("GET", "OPTIONS")
    api.HandleFunc("/complaints/stats", handlers.GetComplaintsStats).Methods("GET", "OPTIONS")

    // Health check
    api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("OK"))
    }).Methods("GET")
}
