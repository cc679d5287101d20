package analytics

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "log"

    "github.com/essexuzx/APAN5400-YellowCabProject/models"
)

// EstimateFare answers a point-to-point fare query from historical
// trips between the two zones. It never returns an error: the result
// is either a *models.FareEstimate or, when the route has no history
// or the store fails, a *models.FareEstimateFailure, so the fare
// calculator stays responsive.
func EstimateFare(ctx context.Context, db *sql.DB, pickupID, dropoffID int) interface{} {
    est, err := fareAggregate(ctx, db, pickupID, dropoffID)
    if errors.Is(err, ErrNoData) {
        return &models.FareEstimateFailure{
            Success: false,
            Message: "No historical data found for this route",
        }
    }
    if err != nil {
        log.Printf("EstimateFare: %v", err)
        return &models.FareEstimateFailure{
            Success: false,
            Message: fmt.Sprintf("Error: %v", err),
        }
    }

    zones, err := ResolveZones(ctx, db, []int{pickupID, dropoffID})
    if err != nil {
        log.Printf("EstimateFare: %v", err)
        return &models.FareEstimateFailure{
            Success: false,
            Message: fmt.Sprintf("Error: %v", err),
        }
    }

    pickup, ok := zones[pickupID]
    if !ok {
        pickup = PlaceholderZone(pickupID)
    }
    dropoff, ok := zones[dropoffID]
    if !ok {
        dropoff = PlaceholderZone(dropoffID)
    }

    est.Success = true
    est.PickupZone = pickup.Zone
    est.PickupBorough = pickup.Borough
    est.DropoffZone = dropoff.Zone
    est.DropoffBorough = dropoff.Borough
    return est
}

func fareAggregate(ctx context.Context, db *sql.DB, pickupID, dropoffID int) (*models.FareEstimate, error) {
    const query = `
    SELECT
        COUNT(*) as trip_count,
        COALESCE(AVG(fare_amount), 0) as avg_fare,
        COALESCE(MIN(fare_amount), 0) as min_fare,
        COALESCE(MAX(fare_amount), 0) as max_fare,
        COALESCE(AVG(trip_distance), 0) as avg_distance,
        COALESCE(AVG(EXTRACT(EPOCH FROM (tpep_dropoff_datetime - tpep_pickup_datetime))/60), 0) as avg_duration_min,
        COALESCE(AVG(total_amount), 0) as avg_total,
        COALESCE(AVG(tip_amount), 0) as avg_tip
    FROM yellow_taxi_clean
    WHERE pulocationid = $1
        AND dolocationid = $2
        AND fare_amount > 0
        AND total_amount > 0`

    var est models.FareEstimate
    err := db.QueryRowContext(ctx, query, pickupID, dropoffID).Scan(
        &est.TripCount, &est.AvgFare, &est.MinFare, &est.MaxFare,
        &est.AvgDistance, &est.AvgDurationMin, &est.AvgTotal, &est.AvgTip,
    )
    if err != nil {
        return nil, &DataAccessError{Op: "fare estimate", Err: err}
    }
    if est.TripCount == 0 {
        return nil, ErrNoData
    }
    return &est, nil
}
