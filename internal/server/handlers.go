package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/study-coach/internal/server/middleware"
	"github.com/jonathan/study-coach/internal/session"
	"github.com/jonathan/study-coach/internal/team"
	"github.com/jonathan/study-coach/internal/types"
)

// SessionResponse is returned when an API key is registered.
type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// GuideResponse carries one completed pipeline run.
type GuideResponse struct {
	ServiceType  string       `json:"service_type"`
	ServiceLabel string       `json:"service_label"`
	FinalText    string       `json:"final_text"`
	RunLog       types.RunLog `json:"run_log"`
}

// LogsResponse lists the session's run logs.
type LogsResponse struct {
	Logs      []types.RunLog `json:"logs"`
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
}

// ServiceInfo describes one entry of the service catalog.
type ServiceInfo struct {
	ServiceType    string   `json:"service_type"`
	Label          string   `json:"label"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"required_fields"`
}

// handleCreateSession registers a model API key and issues a session token.
// Registering a different key replaces the active session and discards its
// logs; registering the same key again reuses the session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.sessions.Acquire(r.Context(), req.APIKey)
	if err != nil {
		log.Printf("session creation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "failed to create model client")
		return
	}

	token, err := s.jwtService.GenerateToken(sess.ID())
	if err != nil {
		log.Printf("token generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate session token")
		return
	}

	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		SessionID: sess.ID(),
		Token:     token,
		CreatedAt: sess.CreatedAt(),
	})
}

// handleGuide runs the three-stage pipeline and returns the final guide.
func (s *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	sess, err := s.activeSession(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req, err := decodeGuideRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	serviceType := types.ParseServiceType(req.ServiceType)
	finalText, runLog := sess.Run(r.Context(), serviceType, types.InputData(req.InputData))

	s.jsonResponse(w, http.StatusOK, GuideResponse{
		ServiceType:  string(serviceType),
		ServiceLabel: serviceType.Label(),
		FinalText:    finalText,
		RunLog:       runLog,
	})
}

// handleGuideStream runs the pipeline while streaming per-stage progress as
// Server-Sent Events. The completed guide arrives in the terminating
// "complete" event.
func (s *Server) handleGuideStream(w http.ResponseWriter, r *http.Request) {
	sess, err := s.activeSession(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req, err := decodeGuideRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	serviceType := types.ParseServiceType(req.ServiceType)
	input := types.InputData(req.InputData)

	events := make(chan team.ProgressEvent, 8)
	var finalText string
	var runLog types.RunLog

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		defer close(events)
		finalText, runLog = sess.RunWithProgress(ctx, serviceType, input, func(event team.ProgressEvent) {
			select {
			case events <- event:
			case <-ctx.Done():
			}
		})
		return nil
	})

	for event := range events {
		if err := sse.WriteEvent("progress", event); err != nil {
			log.Printf("SSE write failed, client likely disconnected: %v", err)
			break
		}
	}

	if err := g.Wait(); err != nil {
		sse.WriteError(err.Error())
		return
	}

	sse.WriteEvent("complete", GuideResponse{ //nolint:errcheck
		ServiceType:  string(serviceType),
		ServiceLabel: serviceType.Label(),
		FinalText:    finalText,
		RunLog:       runLog,
	})
}

// handleListLogs returns all run logs of the active session, oldest first.
func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	sess, err := s.activeSession(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	store := sess.Store()
	s.jsonResponse(w, http.StatusOK, LogsResponse{
		Logs:      store.List(),
		Total:     store.Len(),
		Completed: store.CountByStatus(types.StatusCompleted),
	})
}

// handleGetLog returns one run log by ID.
func (s *Server) handleGetLog(w http.ResponseWriter, r *http.Request) {
	sess, err := s.activeSession(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid log ID")
		return
	}

	runLog, ok := sess.Store().Get(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "run log not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, runLog)
}

// handleClearLogs discards all run logs of the active session.
func (s *Server) handleClearLogs(w http.ResponseWriter, r *http.Request) {
	sess, err := s.activeSession(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sess.Store().Clear()
	w.WriteHeader(http.StatusNoContent)
}

// handleListServices returns the service catalog. No session is required.
func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	services := make([]ServiceInfo, 0, len(types.AllServiceTypes()))
	for _, st := range types.AllServiceTypes() {
		services = append(services, ServiceInfo{
			ServiceType:    string(st),
			Label:          st.Label(),
			Description:    st.Description(),
			RequiredFields: st.RequiredInputKeys(),
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"services": services})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// activeSession resolves the request's session token against the manager's
// current session. A stale token, left over from before a key change, is
// rejected rather than silently served another key's session.
func (s *Server) activeSession(r *http.Request) (*session.Session, error) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		return nil, &ErrNoSession{}
	}

	current := s.sessions.Current()
	if current == nil || current.ID() != id {
		return nil, &ErrNoSession{}
	}
	return current, nil
}

// decodeGuideRequest decodes and validates a guide request body.
func decodeGuideRequest(r *http.Request) (*types.GuideRequest, error) {
	var req types.GuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrValidation{Message: "invalid request body"}
	}
	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Message: err.Error()}
	}
	return &req, nil
}

// jsonResponse writes a JSON response with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
