package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to the dashboard frontend
const (
	// Authentication errors (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Invalid credentials
	ErrInvalidToken          = "AUTH_002" // Invalid token
	ErrExpiredToken          = "AUTH_003" // Expired token
	ErrInsufficientPrivilege = "AUTH_004" // Insufficient privileges
	ErrLoginDisabled         = "AUTH_005" // No operator account configured

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required data missing
	ErrInvalidFormat       = "VAL_003" // Invalid data format (dates, sets)

	// Dataset errors (3000-3999)
	ErrDatasetLoad    = "DATA_001" // Source file missing or failed schema parsing
	ErrDatasetExport  = "DATA_002" // CSV serialization failure
	ErrPresetNotFound = "DATA_003" // Unknown filter preset

	// Server errors (5000-5999)
	ErrInternalServer = "SRV_001" // Internal server error
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrLoginDisabled:         http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrDatasetLoad:           http.StatusServiceUnavailable,
	ErrDatasetExport:         http.StatusInternalServerError,
	ErrPresetNotFound:        http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
}

// APIError is the standardized error payload
type APIError struct {
	Code    string `json:"code"`              // Error code for the client
	Message string `json:"message,omitempty"` // Human readable message (optional)
	Details any    `json:"details,omitempty"` // Additional details (optional)
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an API error from a plain Go error
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
