package complaints

import (
    "fmt"
    "strings"
)

// Complaint categories derived from descriptor text.
const (
    CategoryDriver  = "Driver Behavior Issues"
    CategoryVehicle = "Vehicle Issues"
    CategoryCompany = "Company Service Issues"
    CategoryOther   = "Other"
)

// Classification is an ordered rule table: first matching rule wins.
type classificationRule struct {
    substrings []string
    category   string
}

var classificationRules = []classificationRule{
    {[]string{"driver complaint", "driver report"}, CategoryDriver},
    {[]string{"vehicle complaint"}, CategoryVehicle},
    {[]string{"car service company"}, CategoryCompany},
}

// Classify maps a raw descriptor value to its category. The descriptor
// may be absent or non-string in the source collection, so it is
// stringified before matching; a missing value falls through to Other.
func Classify(descriptor interface{}) string {
    desc := strings.ToLower(fmt.Sprint(descriptor))
    for _, rule := range classificationRules {
        for _, sub := range rule.substrings {
            if strings.Contains(desc, sub) {
                return rule.category
            }
        }
    }
    return CategoryOther
}
