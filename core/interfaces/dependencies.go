// ABOUTME: Dependencies container provides dependency injection for pipeline services
// ABOUTME: Groups the infrastructure every stage may need behind interfaces

package interfaces

// Dependencies holds the external dependencies shared by the pipeline stages
type Dependencies struct {
	// Cache stores fetched page metadata between requests and, for persistent backends, between runs
	Cache Cache

	// HTTPClient performs outbound feed and page requests
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
