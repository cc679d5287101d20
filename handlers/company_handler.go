package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "strconv"

    "github.com/essexuzx/APAN5400-YellowCabProject/analytics"
    "github.com/essexuzx/APAN5400-YellowCabProject/config"
)

// Company dashboard endpoints. Each handler runs one analytics view
// against the trip store and serializes the rows; store failures map
// to a 500.

func GetRevenueSummary(w http.ResponseWriter, r *http.Request) {
    summary, err := analytics.RevenueSummary(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetRevenueSummary: %v", err)
        sendErrorResponse(w, "Error fetching revenue summary", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, summary)
}

func GetPaymentBreakdown(w http.ResponseWriter, r *http.Request) {
    breakdown, err := analytics.PaymentBreakdown(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetPaymentBreakdown: %v", err)
        sendErrorResponse(w, "Error fetching payment breakdown", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(breakdown))
}

func GetTopZones(w http.ResponseWriter, r *http.Request) {
    zones, err := analytics.TopPickupZones(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetTopZones: %v", err)
        sendErrorResponse(w, "Error fetching top zones", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(zones))
}

func GetSurcharges(w http.ResponseWriter, r *http.Request) {
    analysis, err := analytics.SurchargeAnalysis(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetSurcharges: %v", err)
        sendErrorResponse(w, "Error fetching surcharge analysis", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, analysis)
}

func GetHourlyDemand(w http.ResponseWriter, r *http.Request) {
    demand, err := analytics.HourlyRevenue(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetHourlyDemand: %v", err)
        sendErrorResponse(w, "Error fetching hourly demand", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(demand))
}

// GetZones serves the zone dropdown list. The lookup table is static,
// so the result is cached in-process.
func GetZones(w http.ResponseWriter, r *http.Request) {
    cacheKey := config.GetCacheKey("zones", "all")
    if cached, found := config.ZoneCache.Get(cacheKey); found {
        sendJSONResponse(w, cached)
        return
    }

    zones, err := analytics.AllZones(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetZones: %v", err)
        sendErrorResponse(w, "Error fetching zones", http.StatusInternalServerError)
        return
    }

    result := emptyList(zones)
    config.ZoneCache.SetDefault(cacheKey, result)
    sendJSONResponse(w, result)
}

func GetFareEstimate(w http.ResponseWriter, r *http.Request) {
    pickup, errPickup := strconv.Atoi(r.URL.Query().Get("pickup"))
    dropoff, errDropoff := strconv.Atoi(r.URL.Query().Get("dropoff"))
    if errPickup != nil || errDropoff != nil || pickup == 0 || dropoff == 0 {
        sendErrorResponse(w, "Missing pickup or dropoff zone ID", http.StatusBadRequest)
        return
    }

    estimate := analytics.EstimateFare(r.Context(), config.DB, pickup, dropoff)
    sendJSONResponse(w, estimate)
}

// RevenueByDistanceRemoved is the tombstone for a retired endpoint;
// the fare calculator replaced it.
func RevenueByDistanceRemoved(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusNotFound)
    json.NewEncoder(w).Encode(map[string]string{
        "message": "This endpoint has been replaced by fare calculator",
    })
}
