// ABOUTME: Custom error types for the aggregation pipeline
// ABOUTME: Separates recoverable per-source/per-item failures from fatal run failures

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents invalid run configuration. Fatal, raised before any I/O.
type ConfigurationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on field '%s': %s", e.Field, e.Message)
}

// SourceFetchError represents a failure to fetch or parse one source feed
type SourceFetchError struct {
	Source string
	Cause  error
}

// Error implements the error interface
func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Cause)
}

// Unwrap returns the underlying cause
func (e *SourceFetchError) Unwrap() error {
	return e.Cause
}

// EnrichmentError represents a failed page metadata fetch
type EnrichmentError struct {
	URL   string
	Cause error
}

// Error implements the error interface
func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrichment of %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *EnrichmentError) Unwrap() error {
	return e.Cause
}

// PersistenceError represents a failure to write the output artifact. Fatal.
type PersistenceError struct {
	Target string
	Cause  error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist artifact to %s: %v", e.Target, e.Cause)
}

// Unwrap returns the underlying cause
func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// ExternalAPIError represents an unexpected response from a remote endpoint
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsSourceFetch checks if an error is a SourceFetchError
func IsSourceFetch(err error) bool {
	var fetchErr *SourceFetchError
	return errors.As(err, &fetchErr)
}

// IsEnrichment checks if an error is an EnrichmentError
func IsEnrichment(err error) bool {
	var enrichErr *EnrichmentError
	return errors.As(err, &enrichErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
