package models

// Aggregate result rows produced by the analytics queries over
// yellow_taxi_clean. Field order matches the SELECT lists.

type RevenueSummary struct {
    TotalTrips        int64   `json:"total_trips"`
    TotalFare         float64 `json:"total_fare"`
    TotalTips         float64 `json:"total_tips"`
    TotalTolls        float64 `json:"total_tolls"`
    TotalRevenue      float64 `json:"total_revenue"`
    AvgDistance       float64 `json:"avg_distance"`
    AvgFare           float64 `json:"avg_fare"`
    CreditCardRevenue float64 `json:"credit_card_revenue"`
    CashRevenue       float64 `json:"cash_revenue"`
}

type PaymentBreakdown struct {
    PaymentMethod string  `json:"payment_method"`
    TripCount     int64   `json:"trip_count"`
    Revenue       float64 `json:"revenue"`
    AvgTip        float64 `json:"avg_tip"`
}

type TopZone struct {
    ZoneID       int     `json:"zone_id"`
    TripCount    int64   `json:"trip_count"`
    TotalRevenue float64 `json:"total_revenue"`
    AvgFare      float64 `json:"avg_fare"`
    AvgDistance  float64 `json:"avg_distance"`
}

type SurchargeAnalysis struct {
    TotalTrips       int64   `json:"total_trips"`
    CongestionTrips  int64   `json:"congestion_trips"`
    TotalCongestion  float64 `json:"total_congestion"`
    TotalExtra       float64 `json:"total_extra"`
    TotalMTATax      float64 `json:"total_mta_tax"`
    TotalImprovement float64 `json:"total_improvement"`
    AvgCongestion    float64 `json:"avg_congestion"`
}

type HourlyRevenue struct {
    Hour      int     `json:"hour"`
    TripCount int64   `json:"trip_count"`
    Revenue   float64 `json:"revenue"`
    AvgFare   float64 `json:"avg_fare"`
}

type BusyZone struct {
    ZoneID      int     `json:"zone_id"`
    TripCount   int64   `json:"trip_count"`
    AvgFare     float64 `json:"avg_fare"`
    AvgDistance float64 `json:"avg_distance"`
}

type PopularRoute struct {
    PickupZone     int     `json:"pickup_zone"`
    DropoffZone    int     `json:"dropoff_zone"`
    TripCount      int64   `json:"trip_count"`
    AvgFare        float64 `json:"avg_fare"`
    AvgDistance    float64 `json:"avg_distance"`
    AvgDurationMin float64 `json:"avg_duration_min"`
}

type HourlyDemand struct {
    Hour          int     `json:"hour"`
    TripCount     int64   `json:"trip_count"`
    AvgPassengers float64 `json:"avg_passengers"`
}

type DailyDemand struct {
    DayOfWeek int    `json:"day_of_week"`
    DayName   string `json:"day_name"`
    TripCount int64  `json:"trip_count"`
}

type ZoneActivity struct {
    ZoneID    int   `json:"zone_id"`
    Hour      int   `json:"hour"`
    TripCount int64 `json:"trip_count"`
}

type WaitEstimate struct {
    ZoneID        int    `json:"zone_id"`
    TripsPerHour  int64  `json:"trips_per_hour"`
    EstimatedWait string `json:"estimated_wait"`
}

// FareEstimate is the point-to-point estimator success result. Every
// key is always serialized: an average over no contributing rows is a
// legitimate 0 and must reach the client as one.
type FareEstimate struct {
    Success        bool    `json:"success"`
    PickupZone     string  `json:"pickup_zone"`
    PickupBorough  string  `json:"pickup_borough"`
    DropoffZone    string  `json:"dropoff_zone"`
    DropoffBorough string  `json:"dropoff_borough"`
    TripCount      int64   `json:"trip_count"`
    AvgFare        float64 `json:"avg_fare"`
    MinFare        float64 `json:"min_fare"`
    MaxFare        float64 `json:"max_fare"`
    AvgDistance    float64 `json:"avg_distance"`
    AvgDurationMin float64 `json:"avg_duration_min"`
    AvgTotal       float64 `json:"avg_total"`
    AvgTip         float64 `json:"avg_tip"`
}

// FareEstimateFailure is the estimator's other shape: a route with no
// history, or a store failure carried as text. A normal outcome, not
// an error.
type FareEstimateFailure struct {
    Success bool   `json:"success"`
    Message string `json:"message"`
}
