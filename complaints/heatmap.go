package complaints

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "html/template"

    "github.com/golang/geo/s2"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/essexuzx/APAN5400-YellowCabProject/models"
)

const (
    mapCenterLat = 40.7128
    mapCenterLng = -74.0060
    mapZoom      = 11
    heatRadius   = 8
    heatBlur     = 6

    // Descriptor layers below this size are noise, not hotspots.
    minDescriptorPoints = 10
)

// Records outside the NYC bounding box are bad geocodes and are
// dropped before any layer is built. Bounds are exclusive.
var nycBounds = s2.RectFromLatLng(s2.LatLngFromDegrees(35, -80)).
    AddPoint(s2.LatLngFromDegrees(45, -70))

func hasValidLocation(c models.Complaint) bool {
    if c.Latitude == nil || c.Longitude == nil {
        return false
    }
    ll := s2.LatLngFromDegrees(*c.Latitude, *c.Longitude)
    return nycBounds.Lat.InteriorContains(ll.Lat.Radians()) &&
        nycBounds.Lng.InteriorContains(ll.Lng.Radians())
}

func filterComplaints(records []models.Complaint) []models.Complaint {
    valid := make([]models.Complaint, 0, len(records))
    for _, c := range records {
        if hasValidLocation(c) {
            valid = append(valid, c)
        }
    }
    return valid
}

type heatLayer struct {
    Name   string
    points [][2]float64
}

// buildLayers produces the overall layer, one layer per category with
// at least one point, and one layer per raw descriptor with at least
// minDescriptorPoints points. Category and descriptor layers keep
// first-appearance order.
func buildLayers(valid []models.Complaint) ([]heatLayer, map[string]int) {
    overall := heatLayer{Name: "Overall Hotspot"}

    var categoryOrder, descriptorOrder []string
    categoryPoints := make(map[string][][2]float64)
    descriptorPoints := make(map[string][][2]float64)
    categoryCounts := make(map[string]int)

    for _, c := range valid {
        point := [2]float64{*c.Latitude, *c.Longitude}
        overall.points = append(overall.points, point)

        category := Classify(c.Descriptor)
        if _, seen := categoryPoints[category]; !seen {
            categoryOrder = append(categoryOrder, category)
        }
        categoryPoints[category] = append(categoryPoints[category], point)
        categoryCounts[category]++

        descriptor := fmt.Sprint(c.Descriptor)
        if _, seen := descriptorPoints[descriptor]; !seen {
            descriptorOrder = append(descriptorOrder, descriptor)
        }
        descriptorPoints[descriptor] = append(descriptorPoints[descriptor], point)
    }

    layers := []heatLayer{overall}
    for _, category := range categoryOrder {
        layers = append(layers, heatLayer{
            Name:   "Category: " + category,
            points: categoryPoints[category],
        })
    }
    for _, descriptor := range descriptorOrder {
        if len(descriptorPoints[descriptor]) < minDescriptorPoints {
            continue
        }
        layers = append(layers, heatLayer{
            Name:   "Descriptor: " + descriptor,
            points: descriptorPoints[descriptor],
        })
    }
    return layers, categoryCounts
}

// The rendered fragment is self-contained: it pulls Leaflet and the
// leaflet.heat plugin itself and attaches the map to its own div, so
// the dashboard can drop it straight into the page.
var mapTemplate = template.Must(template.New("heatmap").Parse(`<div id="complaint-heatmap" style="width: 100%; height: 600px;"></div>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.heat@0.2.0/dist/leaflet-heat.js"></script>
<script>
(function() {
    var map = L.map("complaint-heatmap").setView([{{.CenterLat}}, {{.CenterLng}}], {{.Zoom}});
    L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", {
        attribution: "&copy; OpenStreetMap contributors"
    }).addTo(map);
    var overlays = {};
    var layer;
{{range .Layers}}    layer = L.heatLayer({{.Points}}, {radius: {{$.Radius}}, blur: {{$.Blur}}});
    layer.addTo(map);
    overlays[{{.Name}}] = layer;
{{end}}    L.control.layers(null, overlays, {collapsed: false}).addTo(map);
})();
</script>
`))

type templateLayer struct {
    Name   string
    Points template.JS
}

type templateData struct {
    CenterLat float64
    CenterLng float64
    Zoom      int
    Radius    int
    Blur      int
    Layers    []templateLayer
}

func renderMap(layers []heatLayer) (string, error) {
    data := templateData{
        CenterLat: mapCenterLat,
        CenterLng: mapCenterLng,
        Zoom:      mapZoom,
        Radius:    heatRadius,
        Blur:      heatBlur,
    }
    for _, layer := range layers {
        encoded, err := json.Marshal(layer.points)
        if err != nil {
            return "", fmt.Errorf("encoding layer %q: %v", layer.Name, err)
        }
        data.Layers = append(data.Layers, templateLayer{
            Name:   layer.Name,
            Points: template.JS(encoded),
        })
    }

    var buf bytes.Buffer
    if err := mapTemplate.Execute(&buf, data); err != nil {
        return "", fmt.Errorf("rendering heatmap: %v", err)
    }
    return buf.String(), nil
}

// BuildHeatmap runs the full in-memory pipeline over already-fetched
// complaint records: filter, classify, layer, render.
func BuildHeatmap(records []models.Complaint) (*models.HeatmapResult, error) {
    valid := filterComplaints(records)
    layers, categories := buildLayers(valid)
    html, err := renderMap(layers)
    if err != nil {
        return nil, err
    }
    return &models.HeatmapResult{
        Success:         true,
        TotalComplaints: len(valid),
        MapHTML:         html,
        Categories:      categories,
    }, nil
}

// complaintFinder is the slice of *mongo.Collection the heatmap needs.
type complaintFinder interface {
    Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// GenerateHeatmap fetches up to limit complaint documents and builds
// the layered heatmap. The result is either a *models.HeatmapResult
// or a *models.ComplaintError: the map backs an interactive view and
// must degrade gracefully instead of surfacing store errors.
func GenerateHeatmap(ctx context.Context, coll complaintFinder, limit int64) interface{} {
    opts := options.Find().
        SetLimit(limit).
        SetProjection(bson.M{"latitude": 1, "longitude": 1, "descriptor": 1, "_id": 0})

    cursor, err := coll.Find(ctx, bson.M{}, opts)
    if err != nil {
        return &models.ComplaintError{Success: false, Error: err.Error()}
    }
    defer cursor.Close(ctx)

    var records []models.Complaint
    if err := cursor.All(ctx, &records); err != nil {
        return &models.ComplaintError{Success: false, Error: err.Error()}
    }

    result, err := BuildHeatmap(records)
    if err != nil {
        return &models.ComplaintError{Success: false, Error: err.Error()}
    }
    return result
}
