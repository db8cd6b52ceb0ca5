// Package service wires the table source, the view pipelines, the snapshot
// store and the refresh queue behind the operations the HTTP API and the
// CLI call.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	refreshqueue "github.com/okian/podium/internal/adapters/mq/queue"
	workerpool "github.com/okian/podium/internal/adapters/mq/worker"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/adapters/source"
	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/domain/view"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// RefreshStatus reports what happened to a refresh request.
type RefreshStatus string

const (
	RefreshAccepted  RefreshStatus = "accepted"
	RefreshDuplicate RefreshStatus = "duplicate"
)

// Service implements the API dependencies for the view pipelines.
type Service struct {
	mu sync.RWMutex

	// computeMu keeps view computations sequential.
	computeMu sync.Mutex

	// Core components
	loader     *source.Loader
	store      repository.Store
	pending    dedupe.Deduper
	queue      *refreshqueue.InMemoryQueue
	workerPool *workerpool.Pool

	// Configuration
	athletesPath    string
	medallistsPath  string
	medalsPath      string
	featuresPath    string
	featureProperty string
	columnAliases   map[string]string
	viewOpts        view.Options
	workerCount     int
	queueSize       int
	pendingLimit    int
	featureCount    int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		athletesPath:    "data/athletes.csv",
		medallistsPath:  "data/medallists.csv",
		medalsPath:      "data/medals.csv",
		featureProperty: source.DefaultFeatureNameProperty,
		viewOpts:        view.DefaultOptions(),
		workerCount:     1,
		queueSize:       16,
		pendingLimit:    64,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.loader = source.NewLoader(source.WithColumnAliases(s.columnAliases), source.WithLogger(s.logger))
	s.store = repository.NewMemoryStore()
	s.pending = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.pendingLimit))

	return s
}

// Start starts the refresh workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting podium service...")

	s.queue = refreshqueue.NewInMemoryQueue(refreshqueue.WithCapacity(s.queueSize))
	s.workerPool = workerpool.NewPool(s.workerCount, s.queue, s)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "podium service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("pendingLimit", s.pendingLimit),
	)
	return nil
}

// Stop closes the refresh queue and waits for running refreshes.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	pool := s.workerPool
	s.started = false
	s.mu.Unlock()

	ctx := context.Background()
	s.logger.Info(ctx, "stopping podium service...")

	// Workers may be inside ComputeView, which takes s.mu, so wait unlocked.
	if pool != nil {
		if err := pool.Shutdown(ctx); err != nil {
			s.logger.Warn(ctx, "worker pool shutdown incomplete", logger.Error(err))
		}
	}

	s.logger.Info(ctx, "podium service stopped")
}

// ComputeView loads the tables kind needs, runs its pipeline and publishes
// the result as the latest snapshot. A failed load leaves the previous
// snapshot in place.
func (s *Service) ComputeView(ctx context.Context, kind view.Kind) (repository.Snapshot, error) {
	if _, err := view.ParseKind(string(kind)); err != nil {
		return repository.Snapshot{}, fmt.Errorf("%w: %w", ErrUnknownView, err)
	}

	s.computeMu.Lock()
	defer s.computeMu.Unlock()

	start := time.Now()
	tables, err := s.loadTables(ctx, kind)
	if err != nil {
		metrics.RecordPipelineRun(string(kind), "error")
		metrics.RecordErrorByComponent("service", "load")
		s.logger.Error(ctx, "view load failed", logger.String("view", string(kind)), logger.Error(err))
		return repository.Snapshot{}, err
	}

	s.mu.RLock()
	opts := s.viewOpts
	s.mu.RUnlock()
	if kind == view.KindChoropleth && s.featuresPath != "" {
		features, err := s.loadFeatures(ctx)
		if err != nil {
			metrics.RecordPipelineRun(string(kind), "error")
			metrics.RecordErrorByComponent("service", "load")
			s.logger.Error(ctx, "view load failed", logger.String("view", string(kind)), logger.Error(err))
			return repository.Snapshot{}, err
		}
		opts.Features = features
	}

	out, err := ComputeView(kind, tables, opts)
	if err != nil {
		return repository.Snapshot{}, err
	}
	took := time.Since(start)
	size := outputSize(out)

	snap, err := repository.Encode(string(kind), out, size, took)
	if err != nil {
		metrics.RecordPipelineRun(string(kind), "error")
		return repository.Snapshot{}, err
	}
	snap, err = s.store.Put(ctx, snap)
	if err != nil {
		metrics.RecordPipelineRun(string(kind), "error")
		return repository.Snapshot{}, err
	}

	metrics.RecordPipelineRun(string(kind), "ok")
	metrics.RecordPipelineDuration(string(kind), float64(took.Microseconds())/1000)
	metrics.UpdatePipelineOutputSize(string(kind), size)
	s.logger.Info(ctx, "view computed",
		logger.String("view", string(kind)),
		logger.Int("size", size),
		logger.Duration("took", took))
	return snap, nil
}

// ComputeView is the pure pipeline entry point: it shapes tables into the
// output of kind without touching files or the snapshot store.
func ComputeView(kind view.Kind, tables model.Tables, opts view.Options) (any, error) {
	out, err := view.Compute(kind, tables, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownView, err)
	}
	return out, nil
}

// Snapshot returns the latest snapshot of kind, computing it first when none
// exists or fresh is set.
func (s *Service) Snapshot(ctx context.Context, kind view.Kind, fresh bool) (repository.Snapshot, error) {
	if !fresh {
		snap, err := s.store.Get(ctx, string(kind))
		if err == nil {
			return snap, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return repository.Snapshot{}, err
		}
	}
	return s.ComputeView(ctx, kind)
}

// Snapshots returns every published snapshot.
func (s *Service) Snapshots(ctx context.Context) []repository.Snapshot {
	return s.store.List(ctx)
}

// RequestRefresh queues a background recompute of kind. A request for a
// view that already has a refresh pending is folded into it.
func (s *Service) RequestRefresh(ctx context.Context, kind view.Kind) (string, RefreshStatus, error) {
	s.mu.RLock()
	started, q := s.started, s.queue
	s.mu.RUnlock()
	if !started {
		return "", "", ErrNotStarted
	}

	if s.pending.SeenAndRecord(ctx, string(kind)) {
		metrics.RecordRefreshCoalesced()
		return "", RefreshDuplicate, nil
	}

	job := model.RefreshJob{ID: uuid.NewString(), View: string(kind), RequestedAt: time.Now()}
	if err := q.Enqueue(ctx, job); err != nil {
		s.pending.Unrecord(ctx, string(kind))
		if errors.Is(err, refreshqueue.ErrFull) || errors.Is(err, refreshqueue.ErrClosed) {
			return "", "", fmt.Errorf("%w: %w", ErrBackpressure, err)
		}
		return "", "", err
	}
	s.logger.Debug(ctx, "refresh queued", logger.String("job_id", job.ID), logger.String("view", job.View))
	return job.ID, RefreshAccepted, nil
}

// Refresh recomputes one view. The refresh workers call it for each job.
func (s *Service) Refresh(ctx context.Context, viewName string) error {
	// Clear the pending mark first so requests made during the compute
	// schedule another run.
	s.pending.Unrecord(ctx, viewName)

	kind, err := view.ParseKind(viewName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownView, err)
	}
	_, err = s.ComputeView(ctx, kind)
	return err
}

// loadTables reads the roster and the medals table of kind concurrently.
func (s *Service) loadTables(ctx context.Context, kind view.Kind) (model.Tables, error) {
	rosterName, medalsName := kind.Tables()

	var roster, medals []model.PersonRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.loader.LoadFile(gctx, rosterName, s.path(rosterName))
		return err
	})
	g.Go(func() error {
		var err error
		medals, err = s.loader.LoadFile(gctx, medalsName, s.path(medalsName))
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Tables{}, fmt.Errorf("%w: %s: %w", ErrLoad, kind, err)
	}

	tables := model.Tables{Medals: medals}
	if rosterName == model.TableMedallists {
		tables.Medallists = roster
	} else {
		tables.Athletes = roster
	}
	return tables, nil
}

// loadFeatures reads the map feature names for the choropleth. It runs on
// every choropleth compute so edits to the file are picked up.
func (s *Service) loadFeatures(ctx context.Context) ([]string, error) {
	features, err := source.LoadFeatures(s.featuresPath, s.featureProperty)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: features: %w", ErrLoad, view.KindChoropleth, err)
	}
	s.mu.Lock()
	s.featureCount = len(features)
	s.mu.Unlock()
	s.logger.Debug(ctx, "map features loaded",
		logger.String("path", s.featuresPath),
		logger.Int("features", len(features)))
	return features, nil
}

func (s *Service) path(t model.TableName) string {
	switch t {
	case model.TableAthletes:
		return s.athletesPath
	case model.TableMedallists:
		return s.medallistsPath
	default:
		return s.medalsPath
	}
}

// outputSize counts the records a view hands to its renderer.
func outputSize(out any) int {
	switch v := out.(type) {
	case types.FlowView:
		return len(v.Edges)
	case types.HeatmapView:
		return len(v.Cells)
	case types.ChoroplethView:
		return len(v.Counts)
	default:
		return 0
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":        s.started,
		"workerCount":    s.workerCount,
		"queueSize":      s.queueSize,
		"features":       s.features(),
		"pendingRefresh": s.pending.Keys(),
		"viewCount":      s.store.Count(ctx),
	}

	views := make(map[string]interface{})
	for _, snap := range s.Snapshots(ctx) {
		views[snap.View] = map[string]interface{}{
			"size":       snap.Size,
			"etag":       snap.ETag,
			"computedAt": snap.ComputedAt.UTC().Format(time.RFC3339),
			"tookMs":     float64(snap.Took.Microseconds()) / 1000,
		}
	}
	stats["views"] = views

	if s.started {
		stats["queueLength"] = s.queue.Len(ctx)
		stats["workerCount"] = s.workerPool.Size()
	}
	return stats
}

// features reports the feature count of the last choropleth compute, or the
// statically configured features when no file is set. Callers hold s.mu.
func (s *Service) features() int {
	if s.featuresPath != "" {
		return s.featureCount
	}
	return len(s.viewOpts.Features)
}
