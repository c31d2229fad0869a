package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/reference"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/candidates"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const DefaultTemplateID = "cafe"

type Manager struct {
	catalog *weights.Catalog
	dataset *reference.Dataset
	scorer  candidates.Scorer
	opts    candidates.Options
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(catalog *weights.Catalog, dataset *reference.Dataset, scorer candidates.Scorer, opts candidates.Options) *Manager {
	return &Manager{
		catalog:  catalog,
		dataset:  dataset,
		scorer:   scorer,
		opts:     opts,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Catalog() *weights.Catalog {
	return m.catalog
}

func (m *Manager) Dataset() *reference.Dataset {
	return m.dataset
}

// Create starts a session whose hierarchy is a fresh copy of templateID
// (DefaultTemplateID when empty).
func (m *Manager) Create(ctx context.Context, templateID string) (*Session, error) {
	if templateID == "" {
		templateID = DefaultTemplateID
	}
	h, err := m.catalog.ResetToTemplate(templateID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ResetToTemplate: %w", err)
	}

	id := uuid.NewString()
	s := newSession(id, h, m.catalog, m.dataset, candidates.NewOrchestrator(m.scorer, m.opts), m.now())

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	logger.Infof(ctx, "session %s created with template %s", id, templateID)
	return s, nil
}

// Get returns a live session and marks it as used.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: session %s", constants.ErrNotFound, id)
	}
	s.touch(m.now())
	return s, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: session %s", constants.ErrNotFound, id)
	}
	s.Close()
	logger.Infof(ctx, "session %s deleted", id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than ttl and returns how many were removed.
func (m *Manager) Sweep(ctx context.Context, ttl time.Duration) int {
	deadline := m.now().Add(-ttl)

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if s.LastSeen().Before(deadline) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Close()
		logger.Infof(ctx, "session %s expired", s.ID)
	}
	return len(stale)
}

func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

// StartSweeper runs Sweep on a cron schedule such as "@every 5m". Stop the
// returned cron to end it.
func (m *Manager) StartSweeper(ctx context.Context, schedule string, ttl time.Duration) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if n := m.Sweep(ctx, ttl); n > 0 {
			logger.Infof(ctx, "swept %d idle sessions", n)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("cron.AddFunc: %w", err)
	}
	c.Start()
	return c, nil
}
