package analytics

import (
    "context"
    "database/sql/driver"
    "strings"
    "testing"
)

func TestBucketLabelThresholds(t *testing.T) {
    tests := []struct {
        trips        int64
        wantDetailed string
        wantShort    string
    }{
        {150, "Very Short (< 3 min)", "Very Short"},
        {101, "Very Short (< 3 min)", "Very Short"},
        {100, "Short (3-5 min)", "Short"},
        {51, "Short (3-5 min)", "Short"},
        {50, "Medium (5-10 min)", "Medium"},
        {21, "Medium (5-10 min)", "Medium"},
        {20, "Long (10+ min)", "Long"},
        {1, "Long (10+ min)", "Long"},
        {0, "Long (10+ min)", "Long"},
    }

    for _, tt := range tests {
        if got := bucketLabel(waitBucketsDetailed, tt.trips); got != tt.wantDetailed {
            t.Errorf("detailed label for %d trips: got %q, want %q", tt.trips, got, tt.wantDetailed)
        }
        if got := bucketLabel(waitBuckets, tt.trips); got != tt.wantShort {
            t.Errorf("short label for %d trips: got %q, want %q", tt.trips, got, tt.wantShort)
        }
    }
}

func TestBucketLabelMonotonic(t *testing.T) {
    rank := map[string]int{
        "Very Short": 0,
        "Short":      1,
        "Medium":     2,
        "Long":       3,
    }

    prev := rank[bucketLabel(waitBuckets, 0)]
    for trips := int64(1); trips <= 200; trips++ {
        cur := rank[bucketLabel(waitBuckets, trips)]
        if cur > prev {
            t.Fatalf("bucket got longer as trips rose: %d trips moved rank %d -> %d", trips, prev, cur)
        }
        prev = cur
    }
}

func TestWaitTimeForZoneBindsParameter(t *testing.T) {
    db := newStubDB(t, func(query string, args []driver.NamedValue) (*stubResult, error) {
        if !strings.Contains(query, "$1") {
            t.Fatalf("zone id must be a bound parameter, got: %s", query)
        }
        if len(args) != 1 || args[0].Value != int64(237) {
            t.Fatalf("unexpected args: %+v", args)
        }
        return &stubResult{
            columns: []string{"zone_id", "trips_per_hour"},
            rows:    [][]driver.Value{{int64(237), int64(140)}},
        }, nil
    })

    estimates, err := WaitTimeForZone(context.Background(), db, 237)
    if err != nil {
        t.Fatalf("WaitTimeForZone: %v", err)
    }
    if len(estimates) != 1 {
        t.Fatalf("expected 1 estimate, got %d", len(estimates))
    }
    if estimates[0].EstimatedWait != "Very Short (< 3 min)" {
        t.Errorf("single-zone view must use the detailed labels, got %q", estimates[0].EstimatedWait)
    }
}

func TestWaitTimesUsesShortLabels(t *testing.T) {
    db := newStubDB(t, func(query string, args []driver.NamedValue) (*stubResult, error) {
        if !strings.Contains(query, "LIMIT 20") {
            t.Fatalf("unfiltered view should cap at 20 zones, got: %s", query)
        }
        return &stubResult{
            columns: []string{"zone_id", "trips_per_hour"},
            rows: [][]driver.Value{
                {int64(237), int64(500)},
                {int64(161), int64(60)},
                {int64(43), int64(25)},
                {int64(7), int64(3)},
            },
        }, nil
    })

    estimates, err := WaitTimes(context.Background(), db)
    if err != nil {
        t.Fatalf("WaitTimes: %v", err)
    }

    want := []string{"Very Short", "Short", "Medium", "Long"}
    for i, w := range want {
        if estimates[i].EstimatedWait != w {
            t.Errorf("estimate %d: got %q, want %q", i, estimates[i].EstimatedWait, w)
        }
    }
}
