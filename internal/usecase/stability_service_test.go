package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/footyrecords/club-history/internal/domain/season"
	"github.com/footyrecords/club-history/internal/platform/logging"
)

type entryRepoStub struct {
	byClub map[string][]season.TableEntry
	err    error
}

func (s *entryRepoStub) ListBySeason(context.Context, string) ([]season.TableEntry, error) {
	return nil, nil
}

func (s *entryRepoStub) ListByClub(_ context.Context, clubID string) ([]season.TableEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byClub[clubID], nil
}

func (s *entryRepoStub) ListByClubs(context.Context, []string) ([]season.TableEntry, error) {
	return nil, nil
}

type stabilityWriterStub struct {
	mu      sync.Mutex
	indexes map[string]float64
	failOn  string
}

func (w *stabilityWriterStub) UpdateStability(_ context.Context, clubID string, index float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if clubID == w.failOn {
		return fmt.Errorf("write rejected")
	}
	if w.indexes == nil {
		w.indexes = make(map[string]float64)
	}
	w.indexes[clubID] = index
	return nil
}

func TestStabilityService_Recalculate(t *testing.T) {
	t.Parallel()

	entries := &entryRepoStub{byClub: map[string][]season.TableEntry{
		"c-settled": {
			{Year: "1990", Status: season.StatusNone},
			{Year: "1991", Status: season.StatusNone},
			{Year: "1992", Status: season.StatusNone},
			{Year: "1993", Status: season.StatusNone},
		},
		"c-yoyo": {
			{Year: "1990", Status: season.StatusPromoted},
			{Year: "1991", Status: season.StatusRelegated},
			{Year: "1992", Status: season.StatusPlayoffWinner},
			{Year: "1993", Status: season.StatusRelegated},
		},
	}}
	writer := &stabilityWriterStub{}
	service := NewStabilityService(entries, writer, 2, logging.NewNop())

	if err := service.Recalculate(context.Background(), []string{"c-settled", "c-yoyo"}); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	if got := writer.indexes["c-settled"]; got != 1.0 {
		t.Fatalf("expected index 1.0 for settled club, got %v", got)
	}
	if got := writer.indexes["c-yoyo"]; got != 0.0 {
		t.Fatalf("expected index 0.0 for yo-yo club, got %v", got)
	}
}

func TestStabilityService_Recalculate_EmptyBatchIsNoop(t *testing.T) {
	t.Parallel()

	service := NewStabilityService(&entryRepoStub{}, &stabilityWriterStub{}, 2, logging.NewNop())
	if err := service.Recalculate(context.Background(), nil); err != nil {
		t.Fatalf("empty batch must be a no-op: %v", err)
	}
}

func TestStabilityService_Recalculate_CountsFailuresWithoutAborting(t *testing.T) {
	t.Parallel()

	entries := &entryRepoStub{byClub: map[string][]season.TableEntry{
		"c-good": {{Year: "1990", Status: season.StatusNone}},
		"c-bad":  {{Year: "1990", Status: season.StatusNone}},
	}}
	writer := &stabilityWriterStub{failOn: "c-bad"}
	service := NewStabilityService(entries, writer, 2, logging.NewNop())

	err := service.Recalculate(context.Background(), []string{"c-good", "c-bad"})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if _, ok := writer.indexes["c-good"]; !ok {
		t.Fatalf("healthy club must still be written when a sibling fails")
	}
}

func TestStabilityIndex(t *testing.T) {
	t.Parallel()

	t.Run("windows the ten most recent seasons", func(t *testing.T) {
		t.Parallel()
		var entries []season.TableEntry
		// Twelve seasons: two ancient promotions that must fall outside
		// the window, then ten settled years.
		entries = append(entries,
			season.TableEntry{Year: "1980", Status: season.StatusPromoted},
			season.TableEntry{Year: "1981", Status: season.StatusPromoted},
		)
		for year := 1982; year < 1992; year++ {
			entries = append(entries, season.TableEntry{
				Year:   fmt.Sprintf("%d", year),
				Status: season.StatusNone,
			})
		}

		if got := StabilityIndex(entries); got != 1.0 {
			t.Fatalf("expected 1.0 with movements outside the window, got %v", got)
		}
	})

	t.Run("partial movement", func(t *testing.T) {
		t.Parallel()
		entries := []season.TableEntry{
			{Year: "1990", Status: season.StatusNone},
			{Year: "1991", Status: season.StatusRelegated},
			{Year: "1992", Status: season.StatusNone},
			{Year: "1993", Status: season.StatusPromoted},
		}
		// 2 movements over a window of 4.
		if got := StabilityIndex(entries); got != 0.5 {
			t.Fatalf("expected 0.5, got %v", got)
		}
	})

	t.Run("no history scores zero", func(t *testing.T) {
		t.Parallel()
		if got := StabilityIndex(nil); got != 0 {
			t.Fatalf("expected 0 for empty history, got %v", got)
		}
	})
}
