// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Groups the store, feed HTTP client and logger handed to the engine and services

package interfaces

// Dependencies holds all external dependencies required by the core
type Dependencies struct {
	// Store provides durable key-value persistence
	Store Store

	// HTTPClient fetches the published feed document
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
