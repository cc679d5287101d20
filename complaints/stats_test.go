package complaints

import (
    "context"
    "encoding/json"
    "errors"
    "strings"
    "testing"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/essexuzx/APAN5400-YellowCabProject/models"
)

// stubCounter answers CountDocuments from canned values. The empty
// filter is the total count; the location filter gets its own value
// and can fail independently.
type stubCounter struct {
    total        int64
    withLocation int64
    err          error
    locationErr  error
}

func (s *stubCounter) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
    if s.err != nil {
        return 0, s.err
    }
    f, ok := filter.(bson.M)
    if !ok {
        return 0, errors.New("unexpected filter type")
    }
    if len(f) == 0 {
        return s.total, nil
    }
    if s.locationErr != nil {
        return 0, s.locationErr
    }
    return s.withLocation, nil
}

func TestStatsCounts(t *testing.T) {
    result := Stats(context.Background(), &stubCounter{total: 5000, withLocation: 4200})
    stats, ok := result.(*models.ComplaintStats)
    if !ok {
        t.Fatalf("expected a stats result, got %#v", result)
    }
    if !stats.Success {
        t.Error("stats over a healthy store must carry success=true")
    }
    if stats.TotalComplaints != 5000 || stats.ComplaintsWithLocation != 4200 {
        t.Errorf("unexpected counts: %+v", stats)
    }

    body, err := json.Marshal(result)
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    for _, key := range []string{`"total_complaints":5000`, `"complaints_with_location":4200`} {
        if !strings.Contains(string(body), key) {
            t.Errorf("stats payload must carry %s, got %s", key, body)
        }
    }
}

func TestStatsStoreFailure(t *testing.T) {
    result := Stats(context.Background(), &stubCounter{err: errors.New("server selection timeout")})
    failure, ok := result.(*models.ComplaintError)
    if !ok {
        t.Fatalf("store failure must produce an error result, got %#v", result)
    }
    if failure.Success {
        t.Error("failure result must carry success=false")
    }
    if failure.Error != "server selection timeout" {
        t.Errorf("failure must carry the store error text, got %q", failure.Error)
    }

    body, err := json.Marshal(result)
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    if strings.Contains(string(body), "total_complaints") {
        t.Errorf("failure payload must not carry count keys, got %s", body)
    }
}

func TestStatsLocationCountFailure(t *testing.T) {
    result := Stats(context.Background(), &stubCounter{
        total:       5000,
        locationErr: errors.New("cursor timeout"),
    })
    failure, ok := result.(*models.ComplaintError)
    if !ok {
        t.Fatalf("a failing second count must produce an error result, got %#v", result)
    }
    if failure.Error != "cursor timeout" {
        t.Errorf("failure must carry the store error text, got %q", failure.Error)
    }
}
