package analytics

import (
    "context"
    "database/sql"

    "github.com/essexuzx/APAN5400-YellowCabProject/models"
)

// Aggregation engine over yellow_taxi_clean. One exported function per
// analytic view; each opens nothing of its own — the pooled *sql.DB is
// passed in — runs exactly one query and returns typed rows in the
// query's order.
//
// Revenue-bearing views filter on fare_amount > 0 AND total_amount > 0
// (or total_amount > 0 alone, matching the source view); demand-only
// views require only non-null location/time. Averages over zero rows
// come back as 0 via COALESCE, never NULL.

// RevenueSummary returns the single-row company revenue overview.
func RevenueSummary(ctx context.Context, db *sql.DB) (*models.RevenueSummary, error) {
    const query = `
    SELECT
        COUNT(*) as total_trips,
        COALESCE(SUM(fare_amount), 0) as total_fare,
        COALESCE(SUM(tip_amount), 0) as total_tips,
        COALESCE(SUM(tolls_amount), 0) as total_tolls,
        COALESCE(SUM(total_amount), 0) as total_revenue,
        COALESCE(AVG(trip_distance), 0) as avg_distance,
        COALESCE(AVG(fare_amount), 0) as avg_fare,
        COALESCE(SUM(CASE WHEN payment_type = 1 THEN total_amount ELSE 0 END), 0) as credit_card_revenue,
        COALESCE(SUM(CASE WHEN payment_type = 2 THEN total_amount ELSE 0 END), 0) as cash_revenue
    FROM yellow_taxi_clean
    WHERE total_amount > 0 AND fare_amount > 0`

    var s models.RevenueSummary
    err := db.QueryRowContext(ctx, query).Scan(
        &s.TotalTrips, &s.TotalFare, &s.TotalTips, &s.TotalTolls,
        &s.TotalRevenue, &s.AvgDistance, &s.AvgFare,
        &s.CreditCardRevenue, &s.CashRevenue,
    )
    if err != nil {
        return nil, &DataAccessError{Op: "revenue summary", Err: err}
    }
    return &s, nil
}

// PaymentBreakdown groups revenue by payment type, highest revenue first.
func PaymentBreakdown(ctx context.Context, db *sql.DB) ([]models.PaymentBreakdown, error) {
    const query = `
    SELECT
        CASE payment_type
            WHEN 1 THEN 'Credit Card'
            WHEN 2 THEN 'Cash'
            WHEN 3 THEN 'No Charge'
            WHEN 4 THEN 'Dispute'
            ELSE 'Other'
        END as payment_method,
        COUNT(*) as trip_count,
        COALESCE(SUM(total_amount), 0) as revenue,
        COALESCE(AVG(tip_amount), 0) as avg_tip
    FROM yellow_taxi_clean
    WHERE total_amount > 0
    GROUP BY payment_type
    ORDER BY revenue DESC`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "payment breakdown", Err: err}
    }
    defer rows.Close()

    var out []models.PaymentBreakdown
    for rows.Next() {
        var p models.PaymentBreakdown
        if err := rows.Scan(&p.PaymentMethod, &p.TripCount, &p.Revenue, &p.AvgTip); err != nil {
            return nil, &DataAccessError{Op: "payment breakdown", Err: err}
        }
        out = append(out, p)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "payment breakdown", Err: err}
    }
    return out, nil
}

// TopPickupZones returns the ten highest-revenue pickup zones.
func TopPickupZones(ctx context.Context, db *sql.DB) ([]models.TopZone, error) {
    const query = `
    SELECT
        pulocationid as zone_id,
        COUNT(*) as trip_count,
        COALESCE(SUM(total_amount), 0) as total_revenue,
        COALESCE(AVG(fare_amount), 0) as avg_fare,
        COALESCE(AVG(trip_distance), 0) as avg_distance
    FROM yellow_taxi_clean
    WHERE pulocationid IS NOT NULL AND total_amount > 0
    GROUP BY pulocationid
    ORDER BY total_revenue DESC
    LIMIT 10`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "top pickup zones", Err: err}
    }
    defer rows.Close()

    var out []models.TopZone
    for rows.Next() {
        var z models.TopZone
        if err := rows.Scan(&z.ZoneID, &z.TripCount, &z.TotalRevenue, &z.AvgFare, &z.AvgDistance); err != nil {
            return nil, &DataAccessError{Op: "top pickup zones", Err: err}
        }
        out = append(out, z)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "top pickup zones", Err: err}
    }
    return out, nil
}

// SurchargeAnalysis returns the single-row surcharge totals.
func SurchargeAnalysis(ctx context.Context, db *sql.DB) (*models.SurchargeAnalysis, error) {
    const query = `
    SELECT
        COUNT(*) as total_trips,
        COALESCE(SUM(CASE WHEN congestion_surcharge > 0 THEN 1 ELSE 0 END), 0) as congestion_trips,
        COALESCE(SUM(congestion_surcharge), 0) as total_congestion,
        COALESCE(SUM(extra), 0) as total_extra,
        COALESCE(SUM(mta_tax), 0) as total_mta_tax,
        COALESCE(SUM(improvement_surcharge), 0) as total_improvement,
        COALESCE(AVG(CASE WHEN congestion_surcharge > 0 THEN congestion_surcharge END), 0) as avg_congestion
    FROM yellow_taxi_clean
    WHERE total_amount > 0`

    var s models.SurchargeAnalysis
    err := db.QueryRowContext(ctx, query).Scan(
        &s.TotalTrips, &s.CongestionTrips, &s.TotalCongestion,
        &s.TotalExtra, &s.TotalMTATax, &s.TotalImprovement, &s.AvgCongestion,
    )
    if err != nil {
        return nil, &DataAccessError{Op: "surcharge analysis", Err: err}
    }
    return &s, nil
}

// HourlyRevenue groups revenue-bearing trips by pickup hour (0-23).
func HourlyRevenue(ctx context.Context, db *sql.DB) ([]models.HourlyRevenue, error) {
    const query = `
    SELECT
        EXTRACT(HOUR FROM tpep_pickup_datetime) as hour,
        COUNT(*) as trip_count,
        COALESCE(SUM(total_amount), 0) as revenue,
        COALESCE(AVG(fare_amount), 0) as avg_fare
    FROM yellow_taxi_clean
    WHERE tpep_pickup_datetime IS NOT NULL AND total_amount > 0
    GROUP BY hour
    ORDER BY hour`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "hourly demand", Err: err}
    }
    defer rows.Close()

    var out []models.HourlyRevenue
    for rows.Next() {
        var h models.HourlyRevenue
        if err := rows.Scan(&h.Hour, &h.TripCount, &h.Revenue, &h.AvgFare); err != nil {
            return nil, &DataAccessError{Op: "hourly demand", Err: err}
        }
        out = append(out, h)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "hourly demand", Err: err}
    }
    return out, nil
}

// BusiestPickupZones returns the fifteen busiest pickup zones by trip
// count. Demand-only view: no revenue filter.
func BusiestPickupZones(ctx context.Context, db *sql.DB) ([]models.BusyZone, error) {
    const query = `
    SELECT
        pulocationid as zone_id,
        COUNT(*) as trip_count,
        COALESCE(AVG(fare_amount), 0) as avg_fare,
        COALESCE(AVG(trip_distance), 0) as avg_distance
    FROM yellow_taxi_clean
    WHERE pulocationid IS NOT NULL
    GROUP BY pulocationid
    ORDER BY trip_count DESC
    LIMIT 15`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "busiest pickup zones", Err: err}
    }
    defer rows.Close()

    var out []models.BusyZone
    for rows.Next() {
        var z models.BusyZone
        if err := rows.Scan(&z.ZoneID, &z.TripCount, &z.AvgFare, &z.AvgDistance); err != nil {
            return nil, &DataAccessError{Op: "busiest pickup zones", Err: err}
        }
        out = append(out, z)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "busiest pickup zones", Err: err}
    }
    return out, nil
}

// PopularRoutes returns the ten most traveled pickup/dropoff pairs with
// average duration in minutes.
func PopularRoutes(ctx context.Context, db *sql.DB) ([]models.PopularRoute, error) {
    const query = `
    SELECT
        pulocationid as pickup_zone,
        dolocationid as dropoff_zone,
        COUNT(*) as trip_count,
        COALESCE(AVG(fare_amount), 0) as avg_fare,
        COALESCE(AVG(trip_distance), 0) as avg_distance,
        COALESCE(AVG(EXTRACT(EPOCH FROM (tpep_dropoff_datetime - tpep_pickup_datetime))/60), 0) as avg_duration_min
    FROM yellow_taxi_clean
    WHERE pulocationid IS NOT NULL
        AND dolocationid IS NOT NULL
        AND tpep_pickup_datetime IS NOT NULL
        AND tpep_dropoff_datetime IS NOT NULL
    GROUP BY pulocationid, dolocationid
    ORDER BY trip_count DESC
    LIMIT 10`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "popular routes", Err: err}
    }
    defer rows.Close()

    var out []models.PopularRoute
    for rows.Next() {
        var r models.PopularRoute
        if err := rows.Scan(&r.PickupZone, &r.DropoffZone, &r.TripCount, &r.AvgFare, &r.AvgDistance, &r.AvgDurationMin); err != nil {
            return nil, &DataAccessError{Op: "popular routes", Err: err}
        }
        out = append(out, r)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "popular routes", Err: err}
    }
    return out, nil
}

// DemandByHour groups all located trips by pickup hour.
func DemandByHour(ctx context.Context, db *sql.DB) ([]models.HourlyDemand, error) {
    const query = `
    SELECT
        EXTRACT(HOUR FROM tpep_pickup_datetime) as hour,
        COUNT(*) as trip_count,
        COALESCE(AVG(passenger_count), 0) as avg_passengers
    FROM yellow_taxi_clean
    WHERE tpep_pickup_datetime IS NOT NULL
    GROUP BY hour
    ORDER BY hour`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "demand by hour", Err: err}
    }
    defer rows.Close()

    var out []models.HourlyDemand
    for rows.Next() {
        var h models.HourlyDemand
        if err := rows.Scan(&h.Hour, &h.TripCount, &h.AvgPassengers); err != nil {
            return nil, &DataAccessError{Op: "demand by hour", Err: err}
        }
        out = append(out, h)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "demand by hour", Err: err}
    }
    return out, nil
}

// DemandByDay groups trips by day of week, 0=Sunday through 6=Saturday.
func DemandByDay(ctx context.Context, db *sql.DB) ([]models.DailyDemand, error) {
    const query = `
    SELECT
        EXTRACT(DOW FROM tpep_pickup_datetime) as day_of_week,
        CASE EXTRACT(DOW FROM tpep_pickup_datetime)
            WHEN 0 THEN 'Sunday'
            WHEN 1 THEN 'Monday'
            WHEN 2 THEN 'Tuesday'
            WHEN 3 THEN 'Wednesday'
            WHEN 4 THEN 'Thursday'
            WHEN 5 THEN 'Friday'
            WHEN 6 THEN 'Saturday'
        END as day_name,
        COUNT(*) as trip_count
    FROM yellow_taxi_clean
    WHERE tpep_pickup_datetime IS NOT NULL
    GROUP BY day_of_week, day_name
    ORDER BY day_of_week`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "demand by day", Err: err}
    }
    defer rows.Close()

    var out []models.DailyDemand
    for rows.Next() {
        var d models.DailyDemand
        if err := rows.Scan(&d.DayOfWeek, &d.DayName, &d.TripCount); err != nil {
            return nil, &DataAccessError{Op: "demand by day", Err: err}
        }
        out = append(out, d)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "demand by day", Err: err}
    }
    return out, nil
}

// ZoneActivity returns per-zone per-hour trip counts for the activity
// heatmap, keeping only cells with more than 10 trips.
func ZoneActivity(ctx context.Context, db *sql.DB) ([]models.ZoneActivity, error) {
    const query = `
    SELECT
        pulocationid as zone_id,
        EXTRACT(HOUR FROM tpep_pickup_datetime) as hour,
        COUNT(*) as trip_count
    FROM yellow_taxi_clean
    WHERE pulocationid IS NOT NULL
        AND tpep_pickup_datetime IS NOT NULL
    GROUP BY pulocationid, hour
    HAVING COUNT(*) > 10
    ORDER BY zone_id, hour`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "zone activity", Err: err}
    }
    defer rows.Close()

    var out []models.ZoneActivity
    for rows.Next() {
        var a models.ZoneActivity
        if err := rows.Scan(&a.ZoneID, &a.Hour, &a.TripCount); err != nil {
            return nil, &DataAccessError{Op: "zone activity", Err: err}
        }
        out = append(out, a)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "zone activity", Err: err}
    }
    return out, nil
}
