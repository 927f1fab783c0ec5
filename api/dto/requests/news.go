// ABOUTME: Request DTOs for session and list view endpoints
// ABOUTME: Validation constraints are enforced by Huma from the struct tags

package requests

// CreateSessionRequest starts or resumes a session
type CreateSessionRequest struct {
	// ID resumes an earlier session and its persisted favorites when set
	ID string `json:"id,omitempty" format:"uuid" doc:"Existing session id to resume"`
}

// FilterRequest selects a category
type FilterRequest struct {
	Category string `json:"category" maxLength:"64" doc:"Canonical category key; empty or \"all\" clears the filter"`
}

// SearchRequest sets the search query
type SearchRequest struct {
	Query string `json:"query" maxLength:"200" doc:"Case-insensitive substring matched against title and origin; empty clears"`
}

// LinkRequest addresses a single item by link
type LinkRequest struct {
	Link string `json:"link" minLength:"1" doc:"Article link identifying the item"`
}

// LinksRequest addresses a set of favorites
type LinksRequest struct {
	Links []string `json:"links" minItems:"1" maxItems:"500" doc:"Article links to remove"`
}

// LinkSet returns the links as an identity set, skipping empty entries
func (r *LinksRequest) LinkSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Links))
	for _, link := range r.Links {
		if link == "" {
			continue
		}
		set[link] = struct{}{}
	}
	return set
}
