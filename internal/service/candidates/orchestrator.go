// Package candidates manages user submitted candidate locations and their
// asynchronous scoring by the remote analysis service.
package candidates

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/domain/dto"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/broadcast"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/selection"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Scorer is the remote analysis service.
type Scorer interface {
	Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
}

type Options struct {
	// Timeout bounds a single remote call; expiry marks the location Failed.
	Timeout time.Duration
	Radius  int
	// MaxInFlight caps concurrent remote calls. Waiting happens in the
	// dispatch goroutine, never in Submit.
	MaxInFlight int
	NewID       func() string
	Now         func() time.Time
}

func (o *Options) setDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.Radius <= 0 {
		o.Radius = constants.DefaultRadiusMeters
	}
	if o.MaxInFlight <= 0 {
		o.MaxInFlight = constants.MaxCandidateLocations
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

type Orchestrator struct {
	scorer Scorer
	opts   Options

	// mu serializes writers; readers load current without locking.
	mu      sync.Mutex
	closed  bool
	current atomic.Pointer[Snapshot]
	updates *broadcast.Broadcaster[*Snapshot]

	sem      *semaphore.Weighted
	inFlight errgroup.Group
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewOrchestrator(scorer Scorer, opts Options) *Orchestrator {
	opts.setDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	o := &Orchestrator{
		scorer:  scorer,
		opts:    opts,
		updates: broadcast.New[*Snapshot](),
		sem:     semaphore.NewWeighted(int64(opts.MaxInFlight)),
		ctx:     ctx,
		cancel:  cancel,
	}
	o.current.Store(&Snapshot{})
	return o
}

func (o *Orchestrator) Snapshot() *Snapshot {
	return o.current.Load()
}

// Subscribe delivers every published snapshot; a slow reader only sees the latest.
func (o *Orchestrator) Subscribe() (<-chan *Snapshot, func()) {
	return o.updates.Subscribe()
}

func (o *Orchestrator) publishLocked(s *Snapshot) {
	o.current.Store(s)
	o.updates.Publish(s)
}

// Submit inserts a Loading record and dispatches exactly one scoring request
// for it. It returns the new id without waiting for the remote call.
func (o *Orchestrator) Submit(ctx context.Context, coords domain.Coords, name, businessType string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return "", constants.ErrSessionClosed
	}

	cur := o.current.Load()
	if len(cur.Locations) >= constants.MaxCandidateLocations {
		return "", constants.ErrCapacityExceeded
	}

	loc := domain.CandidateLocation{
		ID:           o.opts.NewID(),
		Name:         name,
		Coords:       coords,
		BusinessType: businessType,
		Status:       domain.StatusLoading,
		SubmittedAt:  o.opts.Now(),
	}

	next := cur.next()
	next.Locations = append(next.Locations, loc)
	o.publishLocked(next)

	o.inFlight.Go(func() error {
		o.dispatch(loc)
		return nil
	})

	logger.Infof(ctx, "candidate %s submitted at %.5f,%.5f (%s)", loc.ID, coords.Lat, coords.Lon, businessType)
	return loc.ID, nil
}

func (o *Orchestrator) dispatch(loc domain.CandidateLocation) {
	ctx := logger.With(o.ctx, "location_id", loc.ID)

	if err := o.sem.Acquire(ctx, 1); err != nil {
		o.apply(ctx, loc.ID, nil, fmt.Errorf("sem.Acquire: %w", err))
		return
	}
	defer o.sem.Release(1)

	reqCtx, cancel := context.WithTimeout(ctx, o.opts.Timeout)
	defer cancel()

	resp, err := o.scorer.Analyze(reqCtx, dto.AnalyzeRequest{
		Lat:    loc.Coords.Lat,
		Lon:    loc.Coords.Lon,
		Type:   loc.BusinessType,
		Radius: o.opts.Radius,
	})
	if err == nil && !resp.Complete() {
		err = fmt.Errorf("%w: incomplete response", constants.ErrRemoteScoring)
	}

	o.apply(ctx, loc.ID, resp, err)
}

// apply merges a result into the record with the given id. Results for ids that
// were removed, or that already left Loading, are dropped.
func (o *Orchestrator) apply(ctx context.Context, id string, resp *dto.AnalyzeResponse, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}

	cur := o.current.Load()
	i := cur.index(id)
	if i < 0 {
		logger.Debugf(ctx, "result for removed candidate dropped")
		return
	}
	if cur.Locations[i].Status != domain.StatusLoading {
		return
	}

	loc := cur.Locations[i]
	now := o.opts.Now()
	loc.ResolvedAt = &now

	if err != nil {
		zero := 0
		loc.Status = domain.StatusFailed
		loc.Score = &zero
		loc.Details = nil
		loc.Failure = err.Error()
		logger.Warnf(ctx, "scoring failed: %v", err)
	} else {
		score := min(max(*resp.TotalScore, 0), 100)
		loc.Status = domain.StatusScored
		loc.Score = &score
		loc.Details = resp.CategoryScores.ToDomain()
	}

	next := cur.next()
	next.Locations[i] = loc
	if sel, ok := next.selectedLocation(); ok && sel.ID == id {
		logger.Debugf(ctx, "selected candidate refreshed")
	}
	o.publishLocked(next)
}

// Remove deletes a candidate. A pending request is not cancelled; its result
// becomes a no-op. A selection pointing at the removed location is cleared in
// the same snapshot.
func (o *Orchestrator) Remove(ctx context.Context, id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	cur := o.current.Load()
	i := cur.index(id)
	if i < 0 {
		return fmt.Errorf("%w: candidate %s", constants.ErrNotFound, id)
	}

	next := cur.next()
	next.Locations = append(next.Locations[:i], next.Locations[i+1:]...)
	next.Selection = next.Selection.Cleared(id)
	o.publishLocked(next)

	logger.Infof(ctx, "candidate %s removed", id)
	return nil
}

// Select sets the active entity. Location refs must point at an existing
// candidate; district refs are checked by the caller.
func (o *Orchestrator) Select(ref selection.Ref) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	cur := o.current.Load()
	if ref.Kind == selection.KindLocation && cur.index(ref.ID) < 0 {
		return fmt.Errorf("%w: candidate %s", constants.ErrInvalidSelection, ref.ID)
	}
	if cur.Selection == ref {
		return nil
	}

	next := cur.next()
	next.Selection = ref
	o.publishLocked(next)
	return nil
}

func (o *Orchestrator) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()

	cur := o.current.Load()
	if cur.Selection.Empty() {
		return
	}
	next := cur.next()
	next.Selection = selection.Ref{}
	o.publishLocked(next)
}

// Close cancels pending requests, waits for their goroutines and closes all
// subscriptions. Submit fails with ErrSessionClosed afterwards.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	o.cancel()
	_ = o.inFlight.Wait()
	o.updates.Close()
}
