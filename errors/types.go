package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Content root errors
	ErrCodeLayoutInvalid ErrorCode = "LAYOUT_INVALID"

	// Filesystem errors
	ErrCodeIOFailed ErrorCode = "IO_FAILED"

	// HUD collection errors
	ErrCodeHudNotFound      ErrorCode = "HUD_NOT_FOUND"
	ErrCodeHudAlreadyActive ErrorCode = "HUD_ALREADY_ACTIVE"

	// Search errors
	ErrCodeNoResults ErrorCode = "NO_RESULTS"

	// Favorites file errors
	ErrCodeEncodingInvalid ErrorCode = "ENCODING_INVALID"

	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// HudError represents a structured error with context
type HudError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *HudError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HudError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *HudError) WithDetail(key string, value interface{}) *HudError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *HudError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new HudError
func New(code ErrorCode, message string) *HudError {
	return &HudError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HudError
func Wrap(err error, code ErrorCode, message string) *HudError {
	return &HudError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific HudError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	hudErr, ok := err.(*HudError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return hudErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	hudErr, ok := err.(*HudError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return hudErr.Code
}
