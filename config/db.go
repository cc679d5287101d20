package config

import (
    "bufio"
    "context"
    "database/sql"
    "fmt"
    "log"
    "os"
    "strings"
    "time"

    _ "github.com/lib/pq"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "go.mongodb.org/mongo-driver/mongo/readconcern"
    "go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
    DB          *sql.DB
    MongoDB     *mongo.Database
    MongoClient *mongo.Client
)

const (
    maxRetries = 5
    retryDelay = 5 * time.Second
)

// LoadEnv loads environment variables from .env file
func LoadEnv() error {
    possiblePaths := []string{
        ".env",
        "../.env",
        os.Getenv("TAXI_ENV"),
    }

    var loadedFile string

    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            loadedFile = path
            log.Printf("Found .env file at: %s", path)
            break
        }
    }

    if loadedFile == "" {
        // No .env file is fine as long as the environment is already set
        return nil
    }

    file, err := os.Open(loadedFile)
    if err != nil {
        return fmt.Errorf("error opening .env file: %v", err)
    }
    defer file.Close()

    log.Printf("Loading environment variables from %s", loadedFile)
    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := scanner.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        value := strings.TrimSpace(parts[1])
        value = strings.Trim(value, `"'`)
        os.Setenv(key, value)
        if !strings.Contains(strings.ToLower(key), "password") && !strings.Contains(strings.ToLower(key), "secret") {
            log.Printf("Set environment variable: %s", key)
        }
    }

    return scanner.Err()
}

// InitDBWithRetry attempts to connect to PostgreSQL with retries
func InitDBWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = InitDB()
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(retryDelay)
    }
    return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func InitDB() error {
    connStr := getPostgresConnString()

    log.Printf("DB Host: %s", getEnvWithDefault("DB_HOST", "localhost"))
    log.Printf("DB Port: %s", getEnvWithDefault("DB_PORT", "5432"))
    log.Printf("DB Name: %s", getEnvWithDefault("DB_NAME", "taxi"))

    var err error
    DB, err = sql.Open("postgres", connStr)
    if err != nil {
        return fmt.Errorf("error opening PostgreSQL database: %v", err)
    }

    // Set connection pool settings
    DB.SetMaxOpenConns(25)
    DB.SetMaxIdleConns(5)
    DB.SetConnMaxLifetime(5 * time.Minute)

    // Verify connection with timeout
    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    if err = DB.PingContext(ctx); err != nil {
        return fmt.Errorf("error connecting to PostgreSQL database: %v", err)
    }

    // Verify the trip table exists
    var tableExists bool
    err = DB.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_name = 'yellow_taxi_clean'
        )`).Scan(&tableExists)

    if err != nil {
        return fmt.Errorf("error checking yellow_taxi_clean table: %v", err)
    }

    if !tableExists {
        return fmt.Errorf("yellow_taxi_clean table does not exist in the database")
    }

    log.Printf("Successfully connected to PostgreSQL database")
    return nil
}

// ConnectMongoWithRetry attempts to connect to MongoDB with retries
func ConnectMongoWithRetry(maxRetries int) error {
    mongoURI := getMongoURI()

    var err error
    for i := 0; i < maxRetries; i++ {
        err = connectMongo(mongoURI)
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to MongoDB (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(retryDelay)
    }
    return fmt.Errorf("failed to connect after %d attempts: %v", maxRetries, err)
}

// connectMongo initializes the MongoDB connection
func connectMongo(uri string) error {
    clientOptions := options.Client().ApplyURI(uri).
        SetMaxPoolSize(100).
        SetMinPoolSize(10).
        SetConnectTimeout(10 * time.Second).
        SetServerSelectionTimeout(10 * time.Second).
        SetSocketTimeout(30 * time.Second).
        SetRetryReads(true).
        SetReadConcern(readconcern.Local()).
        SetReadPreference(readpref.Primary())

    ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
    defer cancel()

    var err error
    MongoClient, err = mongo.Connect(ctx, clientOptions)
    if err != nil {
        return fmt.Errorf("error connecting to MongoDB: %v", err)
    }

    if err = MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("error pinging MongoDB: %v", err)
    }

    dbName := getMongoDBName()
    MongoDB = MongoClient.Database(dbName)
    log.Printf("Successfully connected to MongoDB database: %s", dbName)

    return nil
}

// Health check functions
func CheckMongoHealth() error {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("MongoDB health check failed: %v", err)
    }
    return nil
}

func CheckPostgresHealth() error {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := DB.PingContext(ctx); err != nil {
        return fmt.Errorf("PostgreSQL health check failed: %v", err)
    }
    return nil
}

// Graceful shutdown
func CloseDB() {
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if DB != nil {
        if err := DB.Close(); err != nil {
            log.Printf("Error closing PostgreSQL connection: %v", err)
        }
    }

    if MongoClient != nil {
        if err := MongoClient.Disconnect(ctx); err != nil {
            log.Printf("Error closing MongoDB connection: %v", err)
        }
    }
}
