// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Boundary validation errors. Malformed measurements are rejected
	// before any fit computation runs, never clamped.
	ErrCodeInvalidMeasurement ErrorCode = "INVALID_MEASUREMENT"
	ErrCodeUnknownSizeSystem  ErrorCode = "UNKNOWN_SIZE_SYSTEM"
	ErrCodeInvalidJobInput    ErrorCode = "INVALID_JOB_INPUT"

	// Data access errors
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeAvatarQueryFailed        ErrorCode = "AVATAR_QUERY_FAILED"
	ErrCodeSizeChartQueryFailed     ErrorCode = "SIZE_CHART_QUERY_FAILED"
	ErrCodeSizeChartNotFound        ErrorCode = "SIZE_CHART_NOT_FOUND"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"

	ErrCodeCatalogSearchFailed  ErrorCode = "CATALOG_SEARCH_FAILED"
	ErrCodeCatalogSearchTimeout ErrorCode = "CATALOG_SEARCH_TIMEOUT"

	// Styling tips registry errors
	ErrCodeTipsRegistryNotFound ErrorCode = "TIPS_REGISTRY_NOT_FOUND"
	ErrCodeTipsRegistryInvalid  ErrorCode = "TIPS_REGISTRY_INVALID"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewInvalidMeasurementError creates a non-retryable validation error for a
// malformed (negative or non-finite) measurement value.
func NewInvalidMeasurementError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidMeasurement,
		Message:   "Measurement is non-positive or non-finite",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidJobInputError creates a non-retryable error for job variables
// that cannot be parsed into the worker's input model.
func NewInvalidJobInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJobInput,
		Message:   "Job variables could not be parsed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownSizeSystemError creates a non-retryable validation error for a
// size system identifier the catalog does not know.
func NewUnknownSizeSystemError(sizeSystem string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownSizeSystem,
		Message:   "Unknown size system",
		Details:   fmt.Sprintf("sizeSystem: %s", sizeSystem),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAvatarQueryFailedError creates a retryable avatar lookup error.
func NewAvatarQueryFailedError(userID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAvatarQueryFailed,
		Message:   "Avatar measurement lookup failed",
		Details:   fmt.Sprintf("userId: %s, error: %s", userID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSizeChartQueryFailedError creates a retryable size chart lookup error.
func NewSizeChartQueryFailedError(productID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSizeChartQueryFailed,
		Message:   "Size chart lookup failed",
		Details:   fmt.Sprintf("productId: %s, error: %s", productID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSizeChartNotFoundError creates a non-retryable missing chart error.
func NewSizeChartNotFoundError(productID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSizeChartNotFound,
		Message:   "No size charts for product",
		Details:   fmt.Sprintf("productId: %s", productID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(queryType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("queryType: %s", queryType),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogSearchFailedError creates a retryable catalog search error.
func NewCatalogSearchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogSearchFailed,
		Message:   "Catalog search error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogSearchTimeoutError creates a retryable catalog search timeout error.
func NewCatalogSearchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogSearchTimeout,
		Message:   "Catalog search timeout",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTipsRegistryNotFoundError creates a non-retryable registry error.
func NewTipsRegistryNotFoundError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTipsRegistryNotFound,
		Message:   "Styling tips registry not found",
		Details:   fmt.Sprintf("path: %s", path),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTipsRegistryInvalidError creates a non-retryable registry schema error.
func NewTipsRegistryInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTipsRegistryInvalid,
		Message:   "Styling tips registry failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes. The codes
// are intentionally identical so workflow models can match on them directly.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidMeasurement:       "INVALID_MEASUREMENT",
	ErrCodeUnknownSizeSystem:        "UNKNOWN_SIZE_SYSTEM",
	ErrCodeInvalidJobInput:          "INVALID_JOB_INPUT",
	ErrCodeDatabaseConnectionFailed: "DATABASE_CONNECTION_FAILED",
	ErrCodeAvatarQueryFailed:        "AVATAR_QUERY_FAILED",
	ErrCodeSizeChartQueryFailed:     "SIZE_CHART_QUERY_FAILED",
	ErrCodeSizeChartNotFound:        "SIZE_CHART_NOT_FOUND",
	ErrCodeQueryTimeout:             "QUERY_TIMEOUT",
	ErrCodeCatalogSearchFailed:      "CATALOG_SEARCH_FAILED",
	ErrCodeCatalogSearchTimeout:     "CATALOG_SEARCH_TIMEOUT",
	ErrCodeTipsRegistryNotFound:     "TIPS_REGISTRY_NOT_FOUND",
	ErrCodeTipsRegistryInvalid:      "TIPS_REGISTRY_INVALID",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeAvatarQueryFailed,
		ErrCodeSizeChartQueryFailed,
		ErrCodeCatalogSearchFailed:
		return 3 // Retryable technical errors

	case ErrCodeQueryTimeout,
		ErrCodeCatalogSearchTimeout:
		return 2 // Partial retry for timeouts

	default:
		return 0 // Validation and business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "MEASUREMENT") || strings.Contains(codeStr, "SIZE_SYSTEM"):
		return "VALIDATION"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY") || strings.Contains(codeStr, "CHART") || strings.Contains(codeStr, "AVATAR"):
		return "DATABASE"
	case strings.Contains(codeStr, "CATALOG"):
		return "SEARCH"
	case strings.Contains(codeStr, "TIPS"):
		return "REGISTRY"
	default:
		return "OTHER"
	}
}
