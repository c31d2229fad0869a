// Package session ties one user's weight hierarchy, candidate locations and
// selection together and derives the rendered view from them.
package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/broadcast"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/reference"
	"github.com/Ram-Pam-Pam/Projekt/internal/scoring"
	"github.com/Ram-Pam-Pam/Projekt/internal/selection"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/candidates"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
)

type Session struct {
	ID string

	catalog *weights.Catalog
	dataset *reference.Dataset

	// mu serializes hierarchy writers and view publication.
	mu             sync.Mutex
	hierarchy      atomic.Pointer[weights.Hierarchy]
	weightsVersion uint64

	candidates *candidates.Orchestrator
	views      *broadcast.Broadcaster[*View]
	done       chan struct{}

	lastSeen atomic.Int64
}

func newSession(id string, h *weights.Hierarchy, catalog *weights.Catalog, dataset *reference.Dataset, orch *candidates.Orchestrator, now time.Time) *Session {
	s := &Session{
		ID:         id,
		catalog:    catalog,
		dataset:    dataset,
		candidates: orch,
		views:      broadcast.New[*View](),
		done:       make(chan struct{}),
	}
	s.hierarchy.Store(h)
	s.touch(now)

	updates, _ := orch.Subscribe()
	go s.forward(updates)
	return s
}

// forward republishes the view on every candidate snapshot until the
// orchestrator is closed.
func (s *Session) forward(updates <-chan *candidates.Snapshot) {
	defer close(s.done)
	for range updates {
		s.mu.Lock()
		s.views.Publish(s.viewLocked())
		s.mu.Unlock()
	}
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) Hierarchy() *weights.Hierarchy {
	return s.hierarchy.Load()
}

func (s *Session) Dataset() *reference.Dataset {
	return s.dataset
}

func (s *Session) Candidates() *candidates.Snapshot {
	return s.candidates.Snapshot()
}

// setHierarchyLocked installs next and publishes a view when it differs from the
// current snapshot. mu must be held.
func (s *Session) setHierarchyLocked(next *weights.Hierarchy) {
	if next == s.hierarchy.Load() {
		return
	}
	s.hierarchy.Store(next)
	s.weightsVersion++
	s.views.Publish(s.viewLocked())
}

func (s *Session) SetCategoryWeight(ctx context.Context, categoryID string, value int) (*weights.Hierarchy, error) {
	if clamped, ok := weights.Clamp(value); ok {
		logger.Warnf(ctx, "weight %s=%d out of range, clamped to %d", categoryID, value, clamped)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.hierarchy.Load().SetCategoryWeight(categoryID, value)
	if err != nil {
		return nil, fmt.Errorf("SetCategoryWeight: %w", err)
	}
	s.setHierarchyLocked(next)
	return next, nil
}

func (s *Session) SetSubcategoryWeight(ctx context.Context, categoryID, subName string, value int) (*weights.Hierarchy, error) {
	if clamped, ok := weights.Clamp(value); ok {
		logger.Warnf(ctx, "weight %s/%s=%d out of range, clamped to %d", categoryID, subName, value, clamped)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.hierarchy.Load().SetSubcategoryWeight(categoryID, subName, value)
	if err != nil {
		return nil, fmt.Errorf("SetSubcategoryWeight: %w", err)
	}
	s.setHierarchyLocked(next)
	return next, nil
}

func (s *Session) ResetToTemplate(ctx context.Context, templateID string) (*weights.Hierarchy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.catalog.ResetToTemplate(templateID)
	if err != nil {
		return nil, fmt.Errorf("ResetToTemplate: %w", err)
	}
	s.setHierarchyLocked(next)

	logger.Infof(ctx, "hierarchy reset to template %s", templateID)
	return next, nil
}

// Ranking scores every reference district under the current hierarchy.
// Results are recomputed on each call.
func (s *Session) Ranking() []RankedDistrict {
	return rankDistricts(scoring.ScoreDistricts(s.dataset, s.hierarchy.Load()))
}

func (s *Session) Submit(ctx context.Context, coords domain.Coords, name, businessType string) (string, error) {
	if businessType == "" {
		businessType = constants.DefaultBusinessType
	}
	if _, err := s.catalog.ByBusinessType(businessType); err != nil {
		return "", err
	}
	return s.candidates.Submit(ctx, coords, name, businessType)
}

func (s *Session) Remove(ctx context.Context, id string) error {
	return s.candidates.Remove(ctx, id)
}

// Select makes kind/id the active entity. District ids must exist in the dataset.
func (s *Session) Select(kind, id string) error {
	ref, err := selection.Parse(kind, id)
	if err != nil {
		return err
	}

	if ref.Kind == selection.KindDistrict {
		districtID, err := strconv.ParseInt(ref.ID, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: district id %q", constants.ErrInvalidSelection, ref.ID)
		}
		if _, ok := s.dataset.District(districtID); !ok {
			return fmt.Errorf("%w: district %d", constants.ErrInvalidSelection, districtID)
		}
	}

	return s.candidates.Select(ref)
}

func (s *Session) ClearSelection() {
	s.candidates.Clear()
}

func (s *Session) View() *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() *View {
	h := s.hierarchy.Load()
	snap := s.candidates.Snapshot()
	return buildView(s.ID, h, s.weightsVersion+snap.Version, scoring.ScoreDistricts(s.dataset, h), snap)
}

// Subscribe streams views. The current view is delivered first.
func (s *Session) Subscribe() (<-chan *View, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.views.SubscribeWith(s.viewLocked())
}

// Close stops the orchestrator; pending results are discarded.
func (s *Session) Close() {
	s.candidates.Close()
	<-s.done
	s.views.Close()
}
