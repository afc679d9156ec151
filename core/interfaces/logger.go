package interfaces

// Logger defines the interface for structured logging throughout the pipeline.
//
// Example usage:
//
//	logger.Warn("Source ingestion failed", map[string]interface{}{
//		"source": "movies",
//		"error":  err.Error(),
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general progress of a run.
	Info(msg string, fields map[string]interface{})

	// Warn logs recoverable failures such as a source that could not be fetched.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that abort a run.
	Error(msg string, fields map[string]interface{})
}
