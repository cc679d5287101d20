package analytics

import (
    "context"
    "database/sql/driver"
    "encoding/json"
    "errors"
    "strings"
    "testing"

    "github.com/essexuzx/APAN5400-YellowCabProject/models"
)

func fareRow(tripCount int64) *stubResult {
    return &stubResult{
        columns: []string{
            "trip_count", "avg_fare", "min_fare", "max_fare",
            "avg_distance", "avg_duration_min", "avg_total", "avg_tip",
        },
        rows: [][]driver.Value{
            {tripCount, 14.5, 5.0, 52.0, 2.8, 16.2, 19.75, 2.4},
        },
    }
}

func TestEstimateFareSuccess(t *testing.T) {
    db := newStubDB(t, func(query string, args []driver.NamedValue) (*stubResult, error) {
        if strings.Contains(query, "yellow_taxi_clean") {
            if len(args) != 2 || args[0].Value != int64(132) || args[1].Value != int64(48) {
                t.Fatalf("zone ids must be bound parameters, got %+v", args)
            }
            return fareRow(320), nil
        }
        // Zone lookup: only the pickup id resolves
        return &stubResult{
            columns: []string{"locationid", "zone", "borough"},
            rows: [][]driver.Value{
                {int64(132), "JFK Airport", "Queens"},
            },
        }, nil
    })

    result := EstimateFare(context.Background(), db, 132, 48)
    est, ok := result.(*models.FareEstimate)
    if !ok {
        t.Fatalf("expected a success estimate, got %#v", result)
    }
    if !est.Success {
        t.Fatal("success estimate must carry success=true")
    }
    if est.TripCount != 320 || est.AvgFare != 14.5 {
        t.Errorf("unexpected aggregate: %+v", est)
    }
    if est.PickupZone != "JFK Airport" || est.PickupBorough != "Queens" {
        t.Errorf("unexpected pickup zone: %+v", est)
    }
    if est.DropoffZone != "Zone 48" || est.DropoffBorough != "Unknown" {
        t.Errorf("unresolved dropoff should get placeholders: %+v", est)
    }
}

// Cash-only routes legitimately average a zero tip, and COALESCE can
// hand back zero durations. Zero values still have to appear in the
// serialized estimate.
func TestEstimateFareZeroAveragesSerialized(t *testing.T) {
    db := newStubDB(t, func(query string, args []driver.NamedValue) (*stubResult, error) {
        if strings.Contains(query, "yellow_taxi_clean") {
            return &stubResult{
                columns: []string{
                    "trip_count", "avg_fare", "min_fare", "max_fare",
                    "avg_distance", "avg_duration_min", "avg_total", "avg_tip",
                },
                rows: [][]driver.Value{
                    {int64(12), 14.5, 5.0, 52.0, 2.8, 0.0, 19.75, 0.0},
                },
            }, nil
        }
        return &stubResult{columns: []string{"locationid", "zone", "borough"}}, nil
    })

    result := EstimateFare(context.Background(), db, 1, 2)
    body, err := json.Marshal(result)
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    for _, key := range []string{`"avg_tip":0`, `"avg_duration_min":0`} {
        if !strings.Contains(string(body), key) {
            t.Errorf("success payload must carry %s, got %s", key, body)
        }
    }
}

func TestEstimateFareNoHistoricalData(t *testing.T) {
    db := newStubDB(t, func(query string, args []driver.NamedValue) (*stubResult, error) {
        return fareRow(0), nil
    })

    result := EstimateFare(context.Background(), db, 1, 2)
    failure, ok := result.(*models.FareEstimateFailure)
    if !ok {
        t.Fatalf("expected a not-found result for a route with no trips, got %#v", result)
    }
    if failure.Success {
        t.Error("not-found result must carry success=false")
    }
    if failure.Message != "No historical data found for this route" {
        t.Errorf("unexpected message: %q", failure.Message)
    }

    body, err := json.Marshal(result)
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    if strings.Contains(string(body), "trip_count") {
        t.Errorf("failure payload must not carry aggregate keys, got %s", body)
    }
}

func TestEstimateFareStoreFailure(t *testing.T) {
    db := newStubDB(t, func(query string, args []driver.NamedValue) (*stubResult, error) {
        return nil, errors.New("connection refused")
    })

    result := EstimateFare(context.Background(), db, 1, 2)
    failure, ok := result.(*models.FareEstimateFailure)
    if !ok {
        t.Fatalf("store failure must not produce a success result, got %#v", result)
    }
    if !strings.HasPrefix(failure.Message, "Error:") {
        t.Errorf("failure message should carry the error text, got %q", failure.Message)
    }
}
