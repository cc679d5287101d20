package handlers

import (
    "context"
    "net/http"
    "time"

    "github.com/essexuzx/APAN5400-YellowCabProject/complaints"
    "github.com/essexuzx/APAN5400-YellowCabProject/config"
)

// 311 complaint endpoints. Both always answer 200 with a success flag:
// the heatmap and its stats back interactive views and degrade
// gracefully instead of surfacing store failures as server errors.

func GetComplaintsHeatmap(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
    defer cancel()

    coll := config.MongoDB.Collection(config.MongoCollectionName())
    result := complaints.GenerateHeatmap(ctx, coll, int64(config.HeatmapRecordLimit()))
    sendJSONResponse(w, result)
}

func GetComplaintsStats(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
    defer cancel()

    coll := config.MongoDB.Collection(config.MongoCollectionName())
    stats := complaints.Stats(ctx, coll)
    sendJSONResponse(w, stats)
}
