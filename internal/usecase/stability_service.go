package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/footyrecords/club-history/internal/domain/season"
	"github.com/footyrecords/club-history/internal/platform/logging"
)

const (
	defaultStabilityWorkers = 4
	stabilityWindowSeasons  = 10
)

// stabilityWriter persists a recomputed stability index.
type stabilityWriter interface {
	UpdateStability(ctx context.Context, clubID string, index float64) error
}

// StabilityService recomputes per-club stability indexes after a season
// lands. Clubs are independent, so the recalculation fans out over a
// bounded worker pool.
type StabilityService struct {
	entryRepo  season.EntryRepository
	writer     stabilityWriter
	maxWorkers int
	logger     *logging.Logger
}

func NewStabilityService(entryRepo season.EntryRepository, writer stabilityWriter, maxWorkers int, logger *logging.Logger) *StabilityService {
	if maxWorkers <= 0 {
		maxWorkers = defaultStabilityWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StabilityService{
		entryRepo:  entryRepo,
		writer:     writer,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// Recalculate refreshes the stability index of every given club. Clubs
// that fail are counted rather than aborting the rest of the batch.
func (s *StabilityService) Recalculate(ctx context.Context, clubIDs []string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StabilityService.Recalculate")
	defer span.End()

	if len(clubIDs) == 0 {
		return nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(clubIDs) {
		workerCount = len(clubIDs)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, clubID := range clubIDs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := s.recalculateOne(ctx, clubID); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "stability recalculation failed for club",
					"club_id", clubID,
					"error", err,
				)
			}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit club to worker pool: %w", err)
		}
	}
	workers.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%w: %d of %d clubs failed", ErrDependencyUnavailable, n, len(clubIDs))
	}
	return nil
}

func (s *StabilityService) recalculateOne(ctx context.Context, clubID string) error {
	entries, err := s.entryRepo.ListByClub(ctx, clubID)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	index := StabilityIndex(entries)
	if err := s.writer.UpdateStability(ctx, clubID, index); err != nil {
		return fmt.Errorf("update stability: %w", err)
	}
	return nil
}

// StabilityIndex measures how settled a club has been over its most
// recent seasons: 1.0 means no promotion or relegation inside the
// window, 0.0 means movement every season. No history scores 0.
func StabilityIndex(entries []season.TableEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	sorted := make([]season.TableEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year > sorted[j].Year
	})

	window := stabilityWindowSeasons
	if window > len(sorted) {
		window = len(sorted)
	}

	movements := 0
	for _, entry := range sorted[:window] {
		if entry.Status.CountsAsPromotion() || entry.Status.CountsAsRelegation() {
			movements++
		}
	}
	return 1 - float64(movements)/float64(window)
}
