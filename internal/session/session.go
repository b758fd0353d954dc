// Package session ties one model credential to one education team and its
// run-log store. A session is rebuilt when the credential changes and reused
// otherwise, replacing the ambient global state the UI layer would otherwise
// need to hold.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/study-coach/internal/llm"
	"github.com/jonathan/study-coach/internal/logstore"
	"github.com/jonathan/study-coach/internal/team"
	"github.com/jonathan/study-coach/internal/types"
)

// Session owns one model client, one education team, and the append-only
// log store for that team's runs.
type Session struct {
	id        uuid.UUID
	apiKey    string
	client    llm.Client
	team      *team.Team
	store     *logstore.Store
	createdAt time.Time
}

// New creates a session around a fresh model client for the given API key.
// A client construction failure here is the pipeline-level failure case; it
// surfaces as an error to the caller, never to a run in flight.
func New(ctx context.Context, apiKey string) (*Session, error) {
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	store := logstore.New()
	return &Session{
		id:        uuid.New(),
		apiKey:    apiKey,
		client:    client,
		team:      team.New(team.Config{Client: client, Store: store}),
		store:     store,
		createdAt: time.Now().UTC(),
	}, nil
}

// Run executes one guidance pipeline run in this session.
func (s *Session) Run(ctx context.Context, serviceType types.ServiceType, inputData types.InputData) (string, types.RunLog) {
	return s.team.Run(ctx, serviceType, inputData)
}

// RunWithProgress executes one run, reporting per-stage progress.
func (s *Session) RunWithProgress(ctx context.Context, serviceType types.ServiceType, inputData types.InputData, onProgress team.ProgressCallback) (string, types.RunLog) {
	return s.team.RunWithProgress(ctx, serviceType, inputData, onProgress)
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Store returns the session's run-log store.
func (s *Session) Store() *logstore.Store {
	return s.store
}

// CreatedAt returns when the session was opened.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Close releases the session's model client.
func (s *Session) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Manager hands out the session for a credential, creating a new one when
// the key changes and reusing the existing one otherwise.
type Manager struct {
	mu      sync.Mutex
	current *Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{}
}

// Acquire returns the session for apiKey. The previous session, if any, is
// closed when a different key arrives; its logs are discarded with it.
func (m *Manager) Acquire(ctx context.Context, apiKey string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.apiKey == apiKey {
		return m.current, nil
	}

	next, err := New(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	if m.current != nil {
		_ = m.current.Close()
	}
	m.current = next
	return next, nil
}

// Current returns the active session, or nil when none has been opened.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Reset closes and discards the active session.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		_ = m.current.Close()
		m.current = nil
	}
}
