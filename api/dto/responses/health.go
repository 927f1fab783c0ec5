package responses

// HealthResponse reports service readiness and runtime switches
type HealthResponse struct {
	Status      string                 `json:"status" enum:"ok,starting,empty" doc:"starting until the first feed is published; empty when the published feed has no items"`
	Sessions    int                    `json:"sessions"`
	FeedVersion uint64                 `json:"feedVersion"`
	FeedItems   int                    `json:"feedItems"`
	LastUpdated string                 `json:"lastUpdated,omitempty"`
	Flags       map[string]bool        `json:"flags"`
	Store       map[string]interface{} `json:"store,omitempty"`
}
