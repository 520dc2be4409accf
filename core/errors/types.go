// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors so callers can classify failures without string matching

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a locally detected input error. No request was
// sent and no retry should be offered.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// AuthError represents a 401/403 response from the server. The session is no
// longer valid and the user must re-authenticate.
type AuthError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected: %d - %s", e.StatusCode, e.Body)
}

// NetworkError represents a request that never received a response.
type NetworkError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError represents a non-success response from the server, carrying the
// raw body text for display.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed: %d - %s", e.Op, e.StatusCode, e.Body)
}

// BridgeReasonUnreachable is the BridgeError reason used when the in-page
// agent could not be reached even after injection.
const BridgeReasonUnreachable = "content agent unreachable"

// BridgeError represents a failure to obtain content from the in-page agent.
type BridgeError struct {
	Reason string
}

// Error implements the error interface
func (e *BridgeError) Error() string {
	return fmt.Sprintf("bridge error: %s", e.Reason)
}

// ExtractionReasonUnparseable is the ExtractionError reason used when a page
// yields neither a readable article nor a user selection.
const ExtractionReasonUnparseable = "could not parse page content"

// ExtractionError represents a failure to derive content from a page.
type ExtractionError struct {
	Reason string
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error: %s", e.Reason)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuth checks if an error is an AuthError
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsAPI checks if an error is an APIError
func IsAPI(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsBridge checks if an error is a BridgeError
func IsBridge(err error) bool {
	var bridgeErr *BridgeError
	return errors.As(err, &bridgeErr)
}

// IsBridgeUnreachable checks if an error is a BridgeError with the
// unreachable reason.
func IsBridgeUnreachable(err error) bool {
	var bridgeErr *BridgeError
	return errors.As(err, &bridgeErr) && bridgeErr.Reason == BridgeReasonUnreachable
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extractErr *ExtractionError
	return errors.As(err, &extractErr)
}

// ClassifyStatus maps a non-success HTTP status to a typed error: 401 and 403
// become AuthError, everything else becomes APIError.
func ClassifyStatus(op string, statusCode int, body string) error {
	if statusCode == 401 || statusCode == 403 {
		return &AuthError{StatusCode: statusCode, Body: body}
	}
	return &APIError{Op: op, StatusCode: statusCode, Body: body}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
