package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigurationError_Error(t *testing.T) {
	err := &ConfigurationError{
		Field:   "LIMIT",
		Message: "must be a positive integer",
	}

	expected := "configuration error on field 'LIMIT': must be a positive integer"
	if err.Error() != expected {
		t.Errorf("ConfigurationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestSourceFetchError_Error(t *testing.T) {
	err := &SourceFetchError{
		Source: "movies",
		Cause:  errors.New("connection refused"),
	}

	expected := "source movies: connection refused"
	if err.Error() != expected {
		t.Errorf("SourceFetchError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "feed",
	}

	expected := "external API error from feed: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestPersistenceError_Error(t *testing.T) {
	err := &PersistenceError{
		Target: "data/entertainment.json",
		Cause:  errors.New("disk full"),
	}

	expected := "failed to persist artifact to data/entertainment.json: disk full"
	if err.Error() != expected {
		t.Errorf("PersistenceError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsConfiguration_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", &ConfigurationError{Field: "SOURCES", Message: "empty"})

	if !IsConfiguration(wrapped) {
		t.Error("IsConfiguration should return true for wrapped ConfigurationError")
	}
	if IsPersistence(wrapped) {
		t.Error("IsPersistence should return false for ConfigurationError")
	}
}

func TestSourceFetchError_UnwrapsCause(t *testing.T) {
	err := &SourceFetchError{Source: "movies", Cause: context.DeadlineExceeded}

	if !IsSourceFetch(err) {
		t.Error("IsSourceFetch should return true for SourceFetchError")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("SourceFetchError should unwrap to its cause")
	}
}

func TestEnrichmentError_UnwrapsExternalAPIError(t *testing.T) {
	apiErr := &ExternalAPIError{StatusCode: 404, Message: "not found", API: "page"}
	err := &EnrichmentError{URL: "https://example.com", Cause: apiErr}

	if !IsEnrichment(err) {
		t.Error("IsEnrichment should return true for EnrichmentError")
	}
	if !IsExternalAPI(err) {
		t.Error("IsExternalAPI should see through EnrichmentError")
	}
}

func TestIsHelpers_False(t *testing.T) {
	err := errors.New("some other error")

	if IsConfiguration(err) || IsSourceFetch(err) || IsEnrichment(err) || IsPersistence(err) || IsExternalAPI(err) {
		t.Error("Is helpers should return false for plain errors")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &PersistenceError{Target: "out.json", Cause: errors.New("denied")}
	wrappedErr := WrapError(originalErr, "emit failed")

	if wrappedErr == nil {
		t.Fatal("WrapError returned nil for non-nil error")
	}
	if !IsPersistence(wrappedErr) {
		t.Error("Wrapped error should still be detectable as PersistenceError")
	}
	if wrappedErr.Error() != "emit failed: failed to persist artifact to out.json: denied" {
		t.Errorf("unexpected message: %s", wrappedErr.Error())
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
