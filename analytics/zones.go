package analytics

import (
    "context"
    "database/sql"
    "fmt"
    "log"
    "strings"

    "github.com/essexuzx/APAN5400-YellowCabProject/models"
)

// The zone lookup table exists in the wild with two column-casing
// conventions. Each read is an explicit two-attempt strategy: the
// quoted mixed-case columns first, the lowercase ones on failure. Only
// when both attempts fail does the error surface.

type zoneSchema struct {
    label  string
    list   string
    lookup string // fmt template, %s replaced with the placeholder list
}

var zoneSchemas = []zoneSchema{
    {
        label:  "mixed-case",
        list:   `SELECT "LocationID" as locationid, "Zone" as zone, "Borough" as borough FROM taxi_zone_lookup ORDER BY "Zone"`,
        lookup: `SELECT "LocationID" as locationid, "Zone" as zone, "Borough" as borough FROM taxi_zone_lookup WHERE "LocationID" IN (%s)`,
    },
    {
        label:  "lowercase",
        list:   `SELECT locationid, zone, borough FROM taxi_zone_lookup ORDER BY zone`,
        lookup: `SELECT locationid, zone, borough FROM taxi_zone_lookup WHERE locationid IN (%s)`,
    },
}

// AllZones lists every zone for the dashboard dropdowns, ordered by name.
func AllZones(ctx context.Context, db *sql.DB) ([]models.Zone, error) {
    var lastErr error
    for _, schema := range zoneSchemas {
        zones, err := queryZones(ctx, db, schema.list)
        if err == nil {
            return zones, nil
        }
        log.Printf("AllZones: %s schema attempt failed: %v", schema.label, err)
        lastErr = err
    }
    return nil, &DataAccessError{Op: "zone lookup", Err: lastErr}
}

// ResolveZones maps the given location ids to zone name and borough.
// Ids absent from the lookup table are simply absent from the result;
// callers substitute placeholders.
func ResolveZones(ctx context.Context, db *sql.DB, ids []int) (map[int]models.Zone, error) {
    if len(ids) == 0 {
        return map[int]models.Zone{}, nil
    }

    placeholders := make([]string, len(ids))
    args := make([]interface{}, len(ids))
    for i, id := range ids {
        placeholders[i] = fmt.Sprintf("$%d", i+1)
        args[i] = id
    }

    var lastErr error
    for _, schema := range zoneSchemas {
        query := fmt.Sprintf(schema.lookup, strings.Join(placeholders, ", "))
        zones, err := queryZones(ctx, db, query, args...)
        if err == nil {
            resolved := make(map[int]models.Zone, len(zones))
            for _, z := range zones {
                resolved[z.LocationID] = z
            }
            return resolved, nil
        }
        log.Printf("ResolveZones: %s schema attempt failed: %v", schema.label, err)
        lastErr = err
    }
    return nil, &DataAccessError{Op: "zone lookup", Err: lastErr}
}

func queryZones(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]models.Zone, error) {
    rows, err := db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var zones []models.Zone
    for rows.Next() {
        var z models.Zone
        if err := rows.Scan(&z.LocationID, &z.Zone, &z.Borough); err != nil {
            return nil, err
        }
        zones = append(zones, z)
    }
    return zones, rows.Err()
}

// PlaceholderZone is what callers use for an id the lookup table does
// not know about.
func PlaceholderZone(id int) models.Zone {
    return models.Zone{
        LocationID: id,
        Zone:       fmt.Sprintf("Zone %d", id),
        Borough:    "Unknown",
    }
}
