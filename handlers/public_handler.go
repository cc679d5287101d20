package handlers

import (
    "log"
    "net/http"
    "strconv"

    "github.com/essexuzx/APAN5400-YellowCabProject/analytics"
    "github.com/essexuzx/APAN5400-YellowCabProject/config"
)

// Public rider dashboard endpoints.

func GetBusiestZones(w http.ResponseWriter, r *http.Request) {
    zones, err := analytics.BusiestPickupZones(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetBusiestZones: %v", err)
        sendErrorResponse(w, "Error fetching busiest zones", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(zones))
}

func GetPopularRoutes(w http.ResponseWriter, r *http.Request) {
    routes, err := analytics.PopularRoutes(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetPopularRoutes: %v", err)
        sendErrorResponse(w, "Error fetching popular routes", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(routes))
}

func GetDemandByHour(w http.ResponseWriter, r *http.Request) {
    demand, err := analytics.DemandByHour(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetDemandByHour: %v", err)
        sendErrorResponse(w, "Error fetching hourly demand", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(demand))
}

func GetDemandByDay(w http.ResponseWriter, r *http.Request) {
    demand, err := analytics.DemandByDay(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetDemandByDay: %v", err)
        sendErrorResponse(w, "Error fetching daily demand", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(demand))
}

// GetWaitTimes serves either the twenty busiest zones or, with
// ?zone=<id>, a single zone.
func GetWaitTimes(w http.ResponseWriter, r *http.Request) {
    zoneParam := r.URL.Query().Get("zone")

    if zoneParam != "" {
        zoneID, err := strconv.Atoi(zoneParam)
        if err != nil {
            sendErrorResponse(w, "Invalid zone ID", http.StatusBadRequest)
            return
        }
        estimates, err := analytics.WaitTimeForZone(r.Context(), config.DB, zoneID)
        if err != nil {
            log.Printf("GetWaitTimes: %v", err)
            sendErrorResponse(w, "Error estimating wait times", http.StatusInternalServerError)
            return
        }
        sendJSONResponse(w, emptyList(estimates))
        return
    }

    estimates, err := analytics.WaitTimes(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetWaitTimes: %v", err)
        sendErrorResponse(w, "Error estimating wait times", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(estimates))
}

func GetZoneActivity(w http.ResponseWriter, r *http.Request) {
    activity, err := analytics.ZoneActivity(r.Context(), config.DB)
    if err != nil {
        log.Printf("GetZoneActivity: %v", err)
        sendErrorResponse(w, "Error fetching zone activity", http.StatusInternalServerError)
        return
    }
    sendJSONResponse(w, emptyList(activity))
}
