// ABOUTME: Health handler for the Huma API
// ABOUTME: Reports feed readiness, live sessions, feature flags and store statistics

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsboard-api/api/dto/responses"
	"newsboard-api/core/domain"
	"newsboard-api/core/interfaces"
	"newsboard-api/pkg/featureflags"
)

// FeedStatus is the part of the session registry the health check reads
type FeedStatus interface {
	Current() (domain.FeedDocument, uint64)
	Count() int
}

// statsReporter is implemented by stores that can describe themselves
type statsReporter interface {
	Stats() (map[string]interface{}, error)
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	feed   FeedStatus
	store  interfaces.Store
	logger interfaces.Logger
}

// NewHealthHandler creates a new health handler. store may be nil.
func NewHealthHandler(feed FeedStatus, store interfaces.Store, logger interfaces.Logger) *HealthHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &HealthHandler{feed: feed, store: store, logger: logger}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Description: "Reports whether a feed has been published, how many sessions are live and which feature flags are on",
		Tags:        []string{"Health"},
	}, h.GetHealth)
}

// HealthOutput defines the output for the GetHealth operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// GetHealth handles GET /health
func (h *HealthHandler) GetHealth(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	doc, version := h.feed.Current()

	out := &HealthOutput{}
	out.Body.Status = "ok"
	switch {
	case version == 0:
		out.Body.Status = "starting"
	case doc.IsEmpty():
		out.Body.Status = "empty"
	}
	out.Body.Sessions = h.feed.Count()
	out.Body.FeedVersion = version
	out.Body.FeedItems = len(doc.Items)
	out.Body.LastUpdated = doc.LastUpdated

	flags := featureflags.FromContext(ctx).GetAllFlags()
	out.Body.Flags = make(map[string]bool, len(featureflags.AllFlags))
	for _, flag := range featureflags.AllFlags {
		out.Body.Flags[string(flag)] = flags[flag]
	}

	if reporter, ok := h.store.(statsReporter); ok {
		stats, err := reporter.Stats()
		if err != nil {
			h.logger.Warn("Failed to read store stats", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			out.Body.Store = stats
		}
	}
	return out, nil
}
