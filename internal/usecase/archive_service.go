package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/footyrecords/club-history/internal/domain/league"
	"github.com/footyrecords/club-history/internal/domain/nation"
	"github.com/footyrecords/club-history/internal/domain/season"
)

// ArchiveService serves the read side of the archive: nations, league
// pyramids and ingested season tables.
type ArchiveService struct {
	nationRepo nation.Repository
	leagueRepo league.Repository
	seasonRepo season.Repository
	entryRepo  season.EntryRepository
}

func NewArchiveService(
	nationRepo nation.Repository,
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	entryRepo season.EntryRepository,
) *ArchiveService {
	return &ArchiveService{
		nationRepo: nationRepo,
		leagueRepo: leagueRepo,
		seasonRepo: seasonRepo,
		entryRepo:  entryRepo,
	}
}

// SeasonTable is one season plus its table ordered by position.
type SeasonTable struct {
	Season  season.Season
	Entries []season.TableEntry
}

func (s *ArchiveService) ListNations(ctx context.Context) ([]nation.Nation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.ListNations")
	defer span.End()

	nations, err := s.nationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nations: %w", err)
	}
	return nations, nil
}

func (s *ArchiveService) ListLeaguesByNation(ctx context.Context, nationID string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.ListLeaguesByNation")
	defer span.End()

	nationID = strings.TrimSpace(nationID)
	if nationID == "" {
		return nil, fmt.Errorf("%w: nation id is required", ErrInvalidInput)
	}

	if _, exists, err := s.nationRepo.GetByID(ctx, nationID); err != nil {
		return nil, fmt.Errorf("get nation: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: nation=%s", ErrNotFound, nationID)
	}

	leagues, err := s.leagueRepo.ListByNation(ctx, nationID)
	if err != nil {
		return nil, fmt.Errorf("list leagues by nation: %w", err)
	}
	return leagues, nil
}

// ListSeasonsByLeague returns a league's ingested seasons, newest year
// first. Divisions of one year stay adjacent in name order.
func (s *ArchiveService) ListSeasonsByLeague(ctx context.Context, leagueID string) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.ListSeasonsByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	seasons, err := s.seasonRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list seasons by league: %w", err)
	}
	sort.SliceStable(seasons, func(i, j int) bool {
		if seasons[i].Year != seasons[j].Year {
			return seasons[i].Year > seasons[j].Year
		}
		return seasons[i].DivisionName < seasons[j].DivisionName
	})
	return seasons, nil
}

func (s *ArchiveService) GetSeasonTable(ctx context.Context, seasonID string) (SeasonTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.GetSeasonTable")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return SeasonTable{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	record, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return SeasonTable{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return SeasonTable{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	entries, err := s.entryRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return SeasonTable{}, fmt.Errorf("list entries: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Position < entries[j].Position
	})

	return SeasonTable{Season: record, Entries: entries}, nil
}
