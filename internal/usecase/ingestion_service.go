package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/league"
	"github.com/footyrecords/club-history/internal/domain/season"
	"github.com/footyrecords/club-history/internal/platform/id"
	"github.com/footyrecords/club-history/internal/platform/logging"
)

// IngestionService turns one submitted season table into persisted
// Season, TableEntry and updated Club records. Divisions are processed
// sequentially; each division's writes land atomically through the
// division store.
type IngestionService struct {
	leagueRepo league.Repository
	clubRepo   club.Repository
	seasonRepo season.Repository
	store      divisionStore
	recalc     StabilityRecalculator
	idGen      id.Generator
	logger     *logging.Logger
}

// divisionStore commits one division's season, its table entries and
// every touched club record as a single all-or-nothing write.
type divisionStore interface {
	SaveDivision(ctx context.Context, s season.Season, entries []season.TableEntry, clubs []club.Club) error
}

// StabilityRecalculator is asked to refresh stability indexes for the
// clubs touched by a single-division ingestion.
type StabilityRecalculator interface {
	Recalculate(ctx context.Context, clubIDs []string) error
}

func NewIngestionService(
	leagueRepo league.Repository,
	clubRepo club.Repository,
	seasonRepo season.Repository,
	store divisionStore,
	recalc StabilityRecalculator,
	idGen id.Generator,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		leagueRepo: leagueRepo,
		clubRepo:   clubRepo,
		seasonRepo: seasonRepo,
		store:      store,
		recalc:     recalc,
		idGen:      idGen,
		logger:     logger,
	}
}

// SeasonSubmission is one admin-submitted season, single- or
// multi-division.
type SeasonSubmission struct {
	LeagueID  string
	Year      string
	Divisions []DivisionSubmission
}

// DivisionSubmission is one division table within a submission. Spot
// counts default to the league's configuration when left zero; Tier
// defaults to the league's current tier.
type DivisionSubmission struct {
	Name            string
	Group           string
	Tier            int
	PromotionSpots  int
	RelegationSpots int
	PlayoffStart    int
	PlayoffEnd      int
	Rows            []RowSubmission
}

// RowSubmission is one table row. Status is optional: blank rows get a
// positional classification, a submitted status (the playoff_winner
// override in particular) is kept as-is.
type RowSubmission struct {
	Position     int
	ClubName     string
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Status       season.Status
}

// DivisionResult reports one division's outcome so callers can observe
// partial failures in multi-division submissions.
type DivisionResult struct {
	Division string
	SeasonID string
	Entries  int
	ClubIDs  []string
	Err      error
}

// SubmitSeason validates and ingests one submission. Validation failures
// reject the whole submission before any mutation. The returned slice
// has one element per processed division; the error is the first
// division failure, with every earlier division already committed.
func (s *IngestionService) SubmitSeason(ctx context.Context, sub SeasonSubmission) ([]DivisionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.SubmitSeason")
	defer span.End()

	sub.LeagueID = strings.TrimSpace(sub.LeagueID)
	sub.Year = strings.TrimSpace(sub.Year)
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, sub.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, sub.LeagueID)
	}

	// Re-ingesting an already persisted (league, year, division) would
	// double every club counter, so the whole submission is rejected
	// up front.
	for _, div := range sub.Divisions {
		_, dup, err := s.seasonRepo.FindByDivision(ctx, sub.LeagueID, sub.Year, strings.TrimSpace(div.Name))
		if err != nil {
			return nil, fmt.Errorf("check existing season: %w", err)
		}
		if dup {
			return nil, fmt.Errorf("%w: league=%s year=%s division=%s", ErrConflict, sub.LeagueID, sub.Year, div.Name)
		}
	}

	index, err := s.buildNameIndex(ctx, lg.NationID)
	if err != nil {
		return nil, err
	}

	results := make([]DivisionResult, 0, len(sub.Divisions))
	var touched []string
	seenClub := make(map[string]struct{})

	for _, div := range sub.Divisions {
		result := s.ingestDivision(ctx, lg, sub.Year, div, index)
		results = append(results, result)
		if result.Err != nil {
			return results, fmt.Errorf("ingest division %q: %w", div.Name, result.Err)
		}
		for _, clubID := range result.ClubIDs {
			if _, ok := seenClub[clubID]; ok {
				continue
			}
			seenClub[clubID] = struct{}{}
			touched = append(touched, clubID)
		}
	}

	if len(sub.Divisions) == 1 && s.recalc != nil {
		if err := s.recalc.Recalculate(ctx, touched); err != nil {
			// The season is already committed; a failed refresh only
			// leaves the stability index stale.
			s.logger.WarnContext(ctx, "stability recalculation failed",
				"league_id", sub.LeagueID,
				"year", sub.Year,
				"club_count", len(touched),
				"error", err,
			)
		}
	}

	return results, nil
}

func validateSubmission(sub SeasonSubmission) error {
	if sub.LeagueID == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if !season.ValidYear(sub.Year) {
		return fmt.Errorf("%w: year %q must match YYYY or YYYY-YY", ErrInvalidInput, sub.Year)
	}
	if len(sub.Divisions) == 0 {
		return fmt.Errorf("%w: at least one division is required", ErrInvalidInput)
	}
	seenDivision := make(map[string]struct{}, len(sub.Divisions))
	for _, div := range sub.Divisions {
		key := strings.ToLower(strings.TrimSpace(div.Name))
		if _, dup := seenDivision[key]; dup {
			return fmt.Errorf("%w: division %q appears more than once", ErrInvalidInput, div.Name)
		}
		seenDivision[key] = struct{}{}
		populated := 0
		for _, row := range div.Rows {
			if strings.TrimSpace(row.ClubName) == "" {
				continue
			}
			populated++
			if row.Position <= 0 {
				return fmt.Errorf("%w: position must be greater than zero for %q", ErrInvalidInput, row.ClubName)
			}
			if row.Won < 0 || row.Drawn < 0 || row.Lost < 0 {
				return fmt.Errorf("%w: won/drawn/lost cannot be negative", ErrInvalidInput)
			}
			if row.GoalsFor < 0 || row.GoalsAgainst < 0 {
				return fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
			}
			if row.Status != "" {
				if _, ok := season.AllStatuses[row.Status]; !ok {
					return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, row.Status)
				}
			}
		}
		if populated == 0 {
			return fmt.Errorf("%w: division %q has no populated rows", ErrInvalidInput, div.Name)
		}
	}
	return nil
}

// buildNameIndex loads the nation's clubs once and keys them by
// normalized name. Two differently-cased occurrences of one name within
// a submission resolve to the same record through this index.
func (s *IngestionService) buildNameIndex(ctx context.Context, nationID string) (map[string]club.Club, error) {
	clubs, err := s.clubRepo.ListByNation(ctx, nationID)
	if err != nil {
		return nil, fmt.Errorf("list clubs by nation: %w", err)
	}
	index := make(map[string]club.Club, len(clubs))
	for _, c := range clubs {
		index[club.NormalizeName(c.Name)] = c
	}
	return index, nil
}

func (s *IngestionService) ingestDivision(
	ctx context.Context,
	lg league.League,
	year string,
	div DivisionSubmission,
	index map[string]club.Club,
) DivisionResult {
	result := DivisionResult{Division: strings.TrimSpace(div.Name)}

	seasonID, err := s.idGen.NewID()
	if err != nil {
		result.Err = fmt.Errorf("new season id: %w", err)
		return result
	}

	tier := div.Tier
	if tier == 0 {
		tier = lg.Tier
	}
	spots := divisionSpots(lg, div)

	record := season.Season{
		ID:              seasonID,
		LeagueID:        lg.ID,
		NationID:        lg.NationID,
		Year:            year,
		Tier:            tier,
		DivisionName:    result.Division,
		DivisionGroup:   strings.TrimSpace(div.Group),
		PromotionSpots:  spots.PromotionSpots,
		RelegationSpots: spots.RelegationSpots,
		PlayoffStart:    spots.PlayoffStart,
		PlayoffEnd:      spots.PlayoffEnd,
	}
	if err := record.Validate(); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrInvalidInput, err)
		return result
	}

	populated := populatedRows(div.Rows)
	spots.TeamCount = len(populated)

	entries := make([]season.TableEntry, 0, len(populated))
	clubsTouched := make(map[string]club.Club)

	for _, row := range populated {
		status := row.Status
		if status == "" {
			status = season.Classify(row.Position, spots)
		}

		entryID, err := s.idGen.NewID()
		if err != nil {
			result.Err = fmt.Errorf("new entry id: %w", err)
			return result
		}

		entry := season.TableEntry{
			ID:           entryID,
			SeasonID:     seasonID,
			ClubName:     row.ClubName,
			Year:         year,
			Tier:         tier,
			Position:     row.Position,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			Points:       row.Points,
			Status:       status,
		}.Normalize()

		delta := club.Delta{
			ClubName:     entry.ClubName,
			Year:         year,
			LeagueID:     lg.ID,
			Tier:         tier,
			Position:     row.Position,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			Points:       row.Points,
			Status:       status,
		}

		key := club.NormalizeName(entry.ClubName)
		resolved, known := index[key]
		if known {
			resolved = club.ApplyDelta(resolved, delta)
		} else {
			clubID, err := s.idGen.NewID()
			if err != nil {
				result.Err = fmt.Errorf("new club id: %w", err)
				return result
			}
			resolved = club.NewFromDelta(clubID, entry.ClubName, lg.NationID, delta)
		}
		index[key] = resolved
		clubsTouched[resolved.ID] = resolved

		entry.ClubID = resolved.ID
		entries = append(entries, entry)
	}

	summarize(&record, entries)

	clubs := make([]club.Club, 0, len(clubsTouched))
	for _, c := range clubsTouched {
		clubs = append(clubs, c)
	}

	if err := s.store.SaveDivision(ctx, record, entries, clubs); err != nil {
		result.Err = fmt.Errorf("save division: %w", err)
		return result
	}

	s.logger.InfoContext(ctx, "season division ingested",
		"season_id", seasonID,
		"league_id", lg.ID,
		"year", year,
		"division", result.Division,
		"entries", len(entries),
	)

	result.SeasonID = seasonID
	result.Entries = len(entries)
	for clubID := range clubsTouched {
		result.ClubIDs = append(result.ClubIDs, clubID)
	}
	return result
}

func divisionSpots(lg league.League, div DivisionSubmission) season.Spots {
	spots := season.Spots{
		PromotionSpots:  div.PromotionSpots,
		RelegationSpots: div.RelegationSpots,
		PlayoffStart:    div.PlayoffStart,
		PlayoffEnd:      div.PlayoffEnd,
	}
	if spots.PromotionSpots == 0 {
		spots.PromotionSpots = lg.PromotionSpots
	}
	if spots.RelegationSpots == 0 {
		spots.RelegationSpots = lg.RelegationSpots
	}
	if spots.PlayoffStart == 0 && spots.PlayoffEnd == 0 {
		spots.PlayoffStart = lg.PlayoffStart
		spots.PlayoffEnd = lg.PlayoffEnd
	}
	return spots
}

func populatedRows(rows []RowSubmission) []RowSubmission {
	out := make([]RowSubmission, 0, len(rows))
	for _, row := range rows {
		row.ClubName = strings.TrimSpace(row.ClubName)
		if row.ClubName == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

// summarize fills the season's derived name lists from its final
// entries.
func summarize(s *season.Season, entries []season.TableEntry) {
	for _, entry := range entries {
		switch {
		case entry.Status == season.StatusChampion:
			s.ChampionName = entry.ClubName
		case entry.Status.CountsAsPromotion():
			s.PromotedNames = append(s.PromotedNames, entry.ClubName)
		case entry.Status.CountsAsRelegation():
			s.RelegatedNames = append(s.RelegatedNames, entry.ClubName)
		}
	}
}
