package analytics

import (
    "context"
    "database/sql"

    "github.com/essexuzx/APAN5400-YellowCabProject/models"
)

// Wait-time buckets are a step function on per-zone trip count,
// expressed as an ordered (threshold, label) table evaluated top to
// bottom. The single-zone and all-zones views carry different literal
// label sets; both are kept as-is.

type waitBucket struct {
    minTrips int64
    label    string
}

var waitBucketsDetailed = []waitBucket{
    {100, "Very Short (< 3 min)"},
    {50, "Short (3-5 min)"},
    {20, "Medium (5-10 min)"},
    {0, "Long (10+ min)"},
}

var waitBuckets = []waitBucket{
    {100, "Very Short"},
    {50, "Short"},
    {20, "Medium"},
    {0, "Long"},
}

func bucketLabel(buckets []waitBucket, trips int64) string {
    for _, b := range buckets {
        if trips > b.minTrips {
            return b.label
        }
    }
    return buckets[len(buckets)-1].label
}

// WaitTimeForZone estimates the wait in a single pickup zone. The zone
// id is always a bound parameter. A zone with no trips yields an empty
// result, not an error.
func WaitTimeForZone(ctx context.Context, db *sql.DB, zoneID int) ([]models.WaitEstimate, error) {
    const query = `
    SELECT
        pulocationid as zone_id,
        COUNT(*) as trips_per_hour
    FROM yellow_taxi_clean
    WHERE pulocationid = $1
    GROUP BY pulocationid`

    rows, err := db.QueryContext(ctx, query, zoneID)
    if err != nil {
        return nil, &DataAccessError{Op: "wait time estimate", Err: err}
    }
    defer rows.Close()

    return scanWaitEstimates(rows, waitBucketsDetailed)
}

// WaitTimes estimates waits for the twenty busiest pickup zones.
func WaitTimes(ctx context.Context, db *sql.DB) ([]models.WaitEstimate, error) {
    const query = `
    SELECT
        pulocationid as zone_id,
        COUNT(*) as trips_per_hour
    FROM yellow_taxi_clean
    WHERE pulocationid IS NOT NULL
    GROUP BY pulocationid
    ORDER BY trips_per_hour DESC
    LIMIT 20`

    rows, err := db.QueryContext(ctx, query)
    if err != nil {
        return nil, &DataAccessError{Op: "wait time estimate", Err: err}
    }
    defer rows.Close()

    return scanWaitEstimates(rows, waitBuckets)
}

func scanWaitEstimates(rows *sql.Rows, buckets []waitBucket) ([]models.WaitEstimate, error) {
    var out []models.WaitEstimate
    for rows.Next() {
        var w models.WaitEstimate
        if err := rows.Scan(&w.ZoneID, &w.TripsPerHour); err != nil {
            return nil, &DataAccessError{Op: "wait time estimate", Err: err}
        }
        w.EstimatedWait = bucketLabel(buckets, w.TripsPerHour)
        out = append(out, w)
    }
    if err := rows.Err(); err != nil {
        return nil, &DataAccessError{Op: "wait time estimate", Err: err}
    }
    return out, nil
}
