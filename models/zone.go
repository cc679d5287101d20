package models

// Zone is one row of the taxi_zone_lookup reference table.
type Zone struct {
    LocationID int    `json:"locationid"`
    Zone       string `json:"zone"`
    Borough    string `json:"borough"`
}
