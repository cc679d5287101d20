package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "time"
)

func sendErrorResponse(w http.ResponseWriter, message string, code int) {
    log.Printf("Error: %s (Code: %d)", message, code)

    response := map[string]interface{}{
        "error":     message,
        "code":      code,
        "status":    http.StatusText(code),
        "timestamp": time.Now().Format(time.RFC3339),
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    json.NewEncoder(w).Encode(response)
}

func sendJSONResponse(w http.ResponseWriter, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    if err := json.NewEncoder(w).Encode(payload); err != nil {
        log.Printf("Error encoding response: %v", err)
    }
}

// emptyList keeps "no rows" responses serialized as [] instead of null.
func emptyList[T any](rows []T) []T {
    if rows == nil {
        return []T{}
    }
    return rows
}
