package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/season"
)

// CareerService resolves a club's lineage into one merged career view.
// Former-name records are the same legal entity and are summed in;
// predecessor records contribute season history only.
type CareerService struct {
	clubRepo  club.Repository
	entryRepo season.EntryRepository
}

func NewCareerService(clubRepo club.Repository, entryRepo season.EntryRepository) *CareerService {
	return &CareerService{
		clubRepo:  clubRepo,
		entryRepo: entryRepo,
	}
}

// CareerView is the display/ranking view of one club across its whole
// lineage: merged totals plus the concatenated season history of the
// current club, its former names and its predecessors, newest first.
type CareerView struct {
	Career       club.Career
	Predecessors []string
	History      []season.TableEntry
}

// EffectiveCareer merges the club's career across its lineage. Links to
// missing records contribute nothing; links that loop back fail with
// ErrLineageCycle.
func (s *CareerService) EffectiveCareer(ctx context.Context, clubID string) (CareerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.EffectiveCareer")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return CareerView{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	current, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return CareerView{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return CareerView{}, fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}

	if err := checkLineageLinks(current); err != nil {
		return CareerView{}, err
	}

	formers, err := s.loadLinked(ctx, current, current.FormerNameIDs)
	if err != nil {
		return CareerView{}, err
	}
	predecessors, err := s.loadLinked(ctx, current, current.PredecessorIDs)
	if err != nil {
		return CareerView{}, err
	}

	view := CareerView{Career: club.MergeCareer(current, formers)}
	for _, p := range predecessors {
		view.Predecessors = append(view.Predecessors, p.Name)
	}

	historyIDs := make([]string, 0, 1+len(formers)+len(predecessors))
	historyIDs = append(historyIDs, current.ID)
	for _, c := range formers {
		historyIDs = append(historyIDs, c.ID)
	}
	for _, c := range predecessors {
		historyIDs = append(historyIDs, c.ID)
	}

	history, err := s.fetchHistories(ctx, historyIDs)
	if err != nil {
		return CareerView{}, err
	}
	view.History = history

	return view, nil
}

// loadLinked fetches the linked records that exist. A dangling id is an
// empty contribution, not an error.
func (s *CareerService) loadLinked(ctx context.Context, current club.Club, ids []string) ([]club.Club, error) {
	out := make([]club.Club, 0, len(ids))
	for _, linkedID := range ids {
		linkedID = strings.TrimSpace(linkedID)
		if linkedID == "" {
			continue
		}
		linked, exists, err := s.clubRepo.GetByID(ctx, linkedID)
		if err != nil {
			return nil, fmt.Errorf("get linked club: %w", err)
		}
		if !exists {
			continue
		}
		if linksBack(linked, current.ID) {
			return nil, fmt.Errorf("%w: club=%s linked=%s", ErrLineageCycle, current.ID, linkedID)
		}
		out = append(out, linked)
	}
	return out, nil
}

// fetchHistories pulls each contributing club's season entries
// concurrently and merges them newest-year first. Duplicate years across
// sources are kept: they are distinct historical rows.
func (s *CareerService) fetchHistories(ctx context.Context, clubIDs []string) ([]season.TableEntry, error) {
	p := pool.NewWithResults[[]season.TableEntry]().WithContext(ctx).WithMaxGoroutines(len(clubIDs))
	for _, clubID := range clubIDs {
		p.Go(func(ctx context.Context) ([]season.TableEntry, error) {
			entries, err := s.entryRepo.ListByClub(ctx, clubID)
			if err != nil {
				return nil, fmt.Errorf("list entries for club %s: %w", clubID, err)
			}
			return entries, nil
		})
	}

	chunks, err := p.Wait()
	if err != nil {
		return nil, err
	}

	var merged []season.TableEntry
	for _, chunk := range chunks {
		merged = append(merged, chunk...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Year > merged[j].Year
	})
	return merged, nil
}

// checkLineageLinks rejects records whose own links already violate the
// one-direction rule before any merging happens.
func checkLineageLinks(c club.Club) error {
	seen := make(map[string]struct{})
	for _, linkedID := range append(append([]string{}, c.FormerNameIDs...), c.PredecessorIDs...) {
		linkedID = strings.TrimSpace(linkedID)
		if linkedID == "" {
			continue
		}
		if linkedID == c.ID {
			return fmt.Errorf("%w: club=%s links to itself", ErrLineageCycle, c.ID)
		}
		if _, dup := seen[linkedID]; dup {
			return fmt.Errorf("%w: club=%s links %s twice", ErrLineageCycle, c.ID, linkedID)
		}
		seen[linkedID] = struct{}{}
	}
	return nil
}

// linksBack reports whether a linked record points back at the club
// being resolved through any lineage relation.
func linksBack(linked club.Club, currentID string) bool {
	if linked.SuccessorID == currentID || linked.CurrentNameID == currentID {
		// Pointing back through successor/current-name is the expected
		// direction, not a cycle.
		return false
	}
	for _, id := range linked.FormerNameIDs {
		if id == currentID {
			return true
		}
	}
	for _, id := range linked.PredecessorIDs {
		if id == currentID {
			return true
		}
	}
	return false
}
