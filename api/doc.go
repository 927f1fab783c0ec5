// Package api provides the HTTP API layer for the Newsboard service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers, one per resource
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// Every list view lives in a session. A client creates one with
// POST /sessions and then addresses /sessions/{id}/... for the news list,
// favorites and the archive.
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// - OpenAPI document available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma validates input from struct tags:
//
//	type SearchRequest struct {
//	    Query string `json:"query" maxLength:"200"`
//	}
//
// 3. Middleware
//
// - Feature flags injected into every request context
// - Request logging with request IDs
// - Per-IP rate limiting while the rate limit flag is on
// - CORS handling
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    Flags:     featureflags.NewEnvManager("FEATURE_"),
//	    RateLimit: 10,
//	})
//
//	handlers.NewNewsHandler(registry, table).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "validation error on field 'category': unknown category weather"
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
