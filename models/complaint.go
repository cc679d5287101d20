package models

// Complaint is one 311 document, projected to the three fields the
// heatmap needs. Coordinates are pointers: missing values must be
// distinguishable from zero. Descriptor is left untyped because the
// source collection carries free-form and occasionally absent values.
type Complaint struct {
    Latitude   *float64    `bson:"latitude" json:"latitude"`
    Longitude  *float64    `bson:"longitude" json:"longitude"`
    Descriptor interface{} `bson:"descriptor" json:"descriptor"`
}

// HeatmapResult is the complaint heatmap success response. Keys are
// always serialized; a heatmap over zero in-bounds complaints still
// reports total_complaints as 0.
type HeatmapResult struct {
    Success         bool           `json:"success"`
    TotalComplaints int            `json:"total_complaints"`
    MapHTML         string         `json:"map_html"`
    Categories      map[string]int `json:"categories"`
}

// ComplaintStats reports collection-level counts on success.
type ComplaintStats struct {
    TotalComplaints        int64 `json:"total_complaints"`
    ComplaintsWithLocation int64 `json:"complaints_with_location"`
    Success                bool  `json:"success"`
}

// ComplaintError is the failure shape shared by the heatmap and stats
// endpoints: success plus error text, nothing else.
type ComplaintError struct {
    Success bool   `json:"success"`
    Error   string `json:"error"`
}
