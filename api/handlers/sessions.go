// ABOUTME: Session handlers for the Huma API
// ABOUTME: Creates sessions and resumes earlier ones with their persisted favorites

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsboard-api/api/dto/requests"
	"newsboard-api/api/dto/responses"
	"newsboard-api/core/listengine"
	"newsboard-api/core/session"
)

// SessionStore is the part of the session registry the handlers need
type SessionStore interface {
	Create(ctx context.Context) *session.Session
	Resume(ctx context.Context, id string) (*session.Session, error)
	Get(id string) (*session.Session, error)
	Remove(id string)
}

// SessionHandler handles session lifecycle requests
type SessionHandler struct {
	sessions SessionStore
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions SessionStore) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RegisterRoutes registers all session routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createSession",
		Method:        http.MethodPost,
		Path:          "/sessions",
		Summary:       "Create or resume a session",
		Description:   "Starts a new list view session, or resumes the session with the given id and its saved favorites",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteSession",
		Method:        http.MethodDelete,
		Path:          "/sessions/{id}",
		Summary:       "End a session",
		Description:   "Drops the live session. Saved favorites stay in the store and come back when the id is resumed",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteSession)
}

// CreateSessionInput defines the input for the CreateSession operation
type CreateSessionInput struct {
	Body *requests.CreateSessionRequest `required:"false"`
}

// CreateSessionOutput defines the output for the CreateSession operation
type CreateSessionOutput struct {
	Body responses.SessionResponse
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	var (
		s       *session.Session
		resumed bool
	)
	if input.Body != nil && input.Body.ID != "" {
		var err error
		s, err = h.sessions.Resume(ctx, input.Body.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		resumed = true
	} else {
		s = h.sessions.Create(ctx)
	}

	out := &CreateSessionOutput{}
	out.Body.ID = s.ID()
	out.Body.Resumed = resumed
	s.Do(func(e *listengine.Engine) {
		out.Body.Favorites = e.FavoriteCount()
	})
	return out, nil
}

// DeleteSessionInput defines the input for the DeleteSession operation
type DeleteSessionInput struct {
	SessionPath
}

// DeleteSession handles DELETE /sessions/{id}
func (h *SessionHandler) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*struct{}, error) {
	if _, err := lookup(h.sessions, input.ID); err != nil {
		return nil, err
	}
	h.sessions.Remove(input.ID)
	return nil, nil
}

// SessionPath identifies a session in the URL
type SessionPath struct {
	ID string `path:"id" format:"uuid" doc:"Session id"`
}

// lookup resolves the session named in the path
func lookup(sessions SessionStore, id string) (*session.Session, error) {
	s, err := sessions.Get(id)
	if err != nil {
		return nil, toHumaError(err)
	}
	return s, nil
}
