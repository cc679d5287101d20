package config

import (
    "os"
    "strconv"
)

// Database configuration
func getPostgresConnString() string {
    host := getEnvWithDefault("DB_HOST", "localhost")
    port := getEnvWithDefault("DB_PORT", "5432")
    user := getEnvWithDefault("DB_USER", "postgres")
    password := getEnvWithDefault("DB_PASSWORD", "123")
    dbname := getEnvWithDefault("DB_NAME", "taxi")
    sslmode := getEnvWithDefault("DB_SSL_MODE", "disable")

    return "host=" + host + " port=" + port + " user=" + user +
        " password=" + password + " dbname=" + dbname + " sslmode=" + sslmode
}

func getMongoURI() string {
    return getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017")
}

func getMongoDBName() string {
    return getEnvWithDefault("MONGO_DB_NAME", "nyc311")
}

// MongoCollectionName returns the complaint collection queried by the
// heatmap and stats endpoints.
func MongoCollectionName() string {
    return getEnvWithDefault("MONGO_COLLECTION", "requests")
}

// HeatmapRecordLimit caps how many complaint documents a single heatmap
// render will pull from MongoDB.
func HeatmapRecordLimit() int {
    return getEnvAsInt("HEATMAP_RECORD_LIMIT", 200000)
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}
