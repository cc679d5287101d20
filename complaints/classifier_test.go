package complaints

import "testing"

func TestClassify(t *testing.T) {
    tests := []struct {
        name       string
        descriptor interface{}
        want       string
    }{
        {"driver complaint", "Driver Complaint - rude", CategoryDriver},
        {"driver report", "DRIVER REPORT filed", CategoryDriver},
        {"vehicle complaint", "Vehicle Complaint - AC broken", CategoryVehicle},
        {"car service company", "Car Service Company issue", CategoryCompany},
        {"unrelated text", "Blocked Driveway", CategoryOther},
        {"missing descriptor", nil, CategoryOther},
        {"numeric descriptor", 311, CategoryOther},
        {"empty string", "", CategoryOther},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := Classify(tt.descriptor); got != tt.want {
                t.Errorf("Classify(%v) = %q, want %q", tt.descriptor, got, tt.want)
            }
        })
    }
}

func TestClassifyPrecedence(t *testing.T) {
    // A descriptor matching both the driver and vehicle rules must
    // resolve to the driver category: first rule wins.
    got := Classify("Driver Complaint about a Vehicle Complaint")
    if got != CategoryDriver {
        t.Errorf("precedence broken: got %q, want %q", got, CategoryDriver)
    }
}
