// internal/engine/validate.go
package engine

import (
	"fmt"
	"math"
)

// Validation issue codes raised at the engine boundary.
const (
	IssueInvalidMeasurement = "INVALID_MEASUREMENT"
	IssueUnknownSizeSystem  = "UNKNOWN_SIZE_SYSTEM"
	IssueMissingSizeLabel   = "MISSING_SIZE_LABEL"
)

// ValidationIssue describes one malformed field in an engine input.
type ValidationIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// knownSizeSystems are the size system identifiers the catalog uses.
var knownSizeSystems = map[string]bool{
	"US":   true,
	"EU":   true,
	"UK":   true,
	"JP":   true,
	"INTL": true,
}

// ValidateAvatar rejects malformed avatar measurements: negative or
// non-finite values are errors and are never silently clamped. A zero value
// means the measurement was not captured and is valid no-data input.
func ValidateAvatar(a AvatarMeasurements) []ValidationIssue {
	var issues []ValidationIssue
	issues = appendMeasurementIssue(issues, "heightCm", a.HeightCm)
	issues = appendMeasurementIssue(issues, "chestCm", a.ChestCm)
	issues = appendMeasurementIssue(issues, "waistCm", a.WaistCm)
	issues = appendMeasurementIssue(issues, "hipCm", a.HipCm)
	return issues
}

// ValidateSizeChart rejects malformed size charts: negative or non-finite
// target measurements, a missing size label, or a size system identifier the
// catalog does not know. An empty size system is treated as absent.
func ValidateSizeChart(c GarmentSizeChart) []ValidationIssue {
	var issues []ValidationIssue

	if c.SizeLabel == "" {
		issues = append(issues, ValidationIssue{
			Field:   "sizeLabel",
			Code:    IssueMissingSizeLabel,
			Message: "size label is required",
		})
	}
	if c.SizeSystem != "" && !knownSizeSystems[c.SizeSystem] {
		issues = append(issues, ValidationIssue{
			Field:   "sizeSystem",
			Code:    IssueUnknownSizeSystem,
			Message: fmt.Sprintf("unknown size system %q", c.SizeSystem),
		})
	}

	issues = appendMeasurementIssue(issues, "chestCm", c.ChestCm)
	issues = appendMeasurementIssue(issues, "waistCm", c.WaistCm)
	issues = appendMeasurementIssue(issues, "hipCm", c.HipCm)
	return issues
}

func appendMeasurementIssue(issues []ValidationIssue, field string, value float64) []ValidationIssue {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return append(issues, ValidationIssue{
			Field:   field,
			Code:    IssueInvalidMeasurement,
			Message: fmt.Sprintf("%s must be finite", field),
		})
	}
	if value < 0 {
		return append(issues, ValidationIssue{
			Field:   field,
			Code:    IssueInvalidMeasurement,
			Message: fmt.Sprintf("%s must not be negative", field),
		})
	}
	return issues
}
