package complaints

import (
    "context"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/essexuzx/APAN5400-YellowCabProject/models"
)

// documentCounter is the slice of *mongo.Collection the stats endpoint
// needs. Narrowing to an interface lets tests count without a server.
type documentCounter interface {
    CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// Stats counts the whole collection and the subset carrying usable
// coordinates. Same failure contract as the heatmap: the result is
// either a *models.ComplaintStats or a *models.ComplaintError.
func Stats(ctx context.Context, coll documentCounter) interface{} {
    total, err := coll.CountDocuments(ctx, bson.M{})
    if err != nil {
        return &models.ComplaintError{Success: false, Error: err.Error()}
    }

    withLocation, err := coll.CountDocuments(ctx, bson.M{
        "latitude":  bson.M{"$exists": true, "$ne": nil},
        "longitude": bson.M{"$exists": true, "$ne": nil},
    })
    if err != nil {
        return &models.ComplaintError{Success: false, Error: err.Error()}
    }

    return &models.ComplaintStats{
        TotalComplaints:        total,
        ComplaintsWithLocation: withLocation,
        Success:                true,
    }
}
