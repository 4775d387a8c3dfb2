package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/league"
	"github.com/footyrecords/club-history/internal/domain/nation"
	"github.com/footyrecords/club-history/internal/domain/ranking"
	"github.com/footyrecords/club-history/internal/domain/season"
	"github.com/footyrecords/club-history/internal/platform/logging"
)

// LocationLevel selects the grouping granularity for location rankings.
type LocationLevel string

const (
	LevelRegion     LocationLevel = "region"
	LevelDistrict   LocationLevel = "district"
	LevelSettlement LocationLevel = "settlement"
)

// PopulationEstimator is the external collaborator consulted for the
// nation strength report.
type PopulationEstimator interface {
	EstimateProClubs(ctx context.Context, in EstimateInput) (int, error)
}

// EstimateInput mirrors the estimator's documented signature.
type EstimateInput struct {
	ClubCount   int
	LeagueCount int
	Membership  nation.Membership
	MaxTier     int
	Population  int64
	AreaKM2     int64
}

// RankingService computes comparative scores over clubs, locations and
// nations. Every scoring pass is a pure function of repository state,
// so repeated calls over unchanged data return identical results.
type RankingService struct {
	clubRepo   club.Repository
	leagueRepo league.Repository
	nationRepo nation.Repository
	seasonRepo season.Repository
	entryRepo  season.EntryRepository
	estimator  PopulationEstimator
	logger     *logging.Logger
}

func NewRankingService(
	clubRepo club.Repository,
	leagueRepo league.Repository,
	nationRepo nation.Repository,
	seasonRepo season.Repository,
	entryRepo season.EntryRepository,
	estimator PopulationEstimator,
	logger *logging.Logger,
) *RankingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RankingService{
		clubRepo:   clubRepo,
		leagueRepo: leagueRepo,
		nationRepo: nationRepo,
		seasonRepo: seasonRepo,
		entryRepo:  entryRepo,
		estimator:  estimator,
		logger:     logger,
	}
}

// LocationRanking is one location's scored row.
type LocationRanking struct {
	Location      string
	Clubs         int
	LeagueTitles  int
	CupTitles     int
	Continental   int
	Promotions    int
	TrophyScore   int
	ActivityScore int
}

// LocationTrophyRanking groups clubs by location, scores each group and
// returns groups with at least one club sorted by trophy score
// descending. Ties keep input iteration order.
func (s *RankingService) LocationTrophyRanking(ctx context.Context, level LocationLevel) ([]LocationRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.LocationTrophyRanking")
	defer span.End()

	clubs, err := s.effectiveClubs(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*LocationRanking)
	var order []string
	for _, view := range clubs {
		key := locationKey(view.record, level)
		if key == "" {
			continue
		}
		group, ok := groups[key]
		if !ok {
			group = &LocationRanking{Location: key}
			groups[key] = group
			order = append(order, key)
		}
		group.Clubs++
		group.LeagueTitles += view.career.LeagueTitles
		group.CupTitles += view.career.DomesticCupTitles
		group.Continental += view.career.ContinentalTopTitles + view.career.ContinentalSecondTitles
		group.Promotions += view.career.Promotions
	}

	out := make([]LocationRanking, 0, len(order))
	for _, key := range order {
		group := groups[key]
		if group.Clubs == 0 {
			continue
		}
		group.TrophyScore = ranking.TrophyScore(group.LeagueTitles, group.CupTitles, group.Continental)
		group.ActivityScore = ranking.ActivityScore(group.Clubs, group.Promotions)
		out = append(out, *group)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrophyScore > out[j].TrophyScore
	})
	return out, nil
}

// RecentForm approximates a location's current competitiveness: the
// average finishing position over the most recent three seasons per
// club. It is exposed for display and never re-sorts the trophy ranking.
func (s *RankingService) RecentForm(ctx context.Context, level LocationLevel, location string) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.RecentForm")
	defer span.End()

	location = strings.TrimSpace(location)
	if location == "" {
		return 0, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	clubs, err := s.effectiveClubs(ctx)
	if err != nil {
		return 0, err
	}

	var clubIDs []string
	for _, view := range clubs {
		if locationKey(view.record, level) == location {
			clubIDs = append(clubIDs, view.record.ID)
		}
	}
	if len(clubIDs) == 0 {
		return 0, fmt.Errorf("%w: location=%s", ErrNotFound, location)
	}

	entries, err := s.entryRepo.ListByClubs(ctx, clubIDs)
	if err != nil {
		return 0, fmt.Errorf("list entries for location: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Year > entries[j].Year
	})

	positions := make([]int, 0, len(entries))
	for _, entry := range entries {
		positions = append(positions, entry.Position)
	}
	return ranking.RecentForm(positions, 3*len(clubIDs)), nil
}

// NationStrengthReport is the scored view of one national association.
type NationStrengthReport struct {
	NationID          string
	Nation            string
	Score             int
	Band              string
	CoefficientRank   int
	ClubCount         int
	LeagueCount       int
	MaxTier           int
	TopFlightTeams    int
	EstimatedProClubs int
}

// NationStrength scores one nation.
func (s *RankingService) NationStrength(ctx context.Context, nationID string) (NationStrengthReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.NationStrength")
	defer span.End()

	nationID = strings.TrimSpace(nationID)
	if nationID == "" {
		return NationStrengthReport{}, fmt.Errorf("%w: nation id is required", ErrInvalidInput)
	}

	nat, exists, err := s.nationRepo.GetByID(ctx, nationID)
	if err != nil {
		return NationStrengthReport{}, fmt.Errorf("get nation: %w", err)
	}
	if !exists {
		return NationStrengthReport{}, fmt.Errorf("%w: nation=%s", ErrNotFound, nationID)
	}

	return s.scoreNation(ctx, nat)
}

// NationStrengthLeaderboard scores every nation and orders by score
// descending; equal scores break on coefficient rank, with unranked
// nations pushed to the bottom rather than excluded.
func (s *RankingService) NationStrengthLeaderboard(ctx context.Context) ([]NationStrengthReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.NationStrengthLeaderboard")
	defer span.End()

	nations, err := s.nationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nations: %w", err)
	}

	out := make([]NationStrengthReport, 0, len(nations))
	for _, nat := range nations {
		report, err := s.scoreNation(ctx, nat)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return effectiveRank(out[i].CoefficientRank) < effectiveRank(out[j].CoefficientRank)
	})
	return out, nil
}

func (s *RankingService) scoreNation(ctx context.Context, nat nation.Nation) (NationStrengthReport, error) {
	clubs, err := s.clubRepo.ListByNation(ctx, nat.ID)
	if err != nil {
		return NationStrengthReport{}, fmt.Errorf("list clubs by nation: %w", err)
	}
	leagues, err := s.leagueRepo.ListByNation(ctx, nat.ID)
	if err != nil {
		return NationStrengthReport{}, fmt.Errorf("list leagues by nation: %w", err)
	}

	byID := make(map[string]club.Club, len(clubs))
	for _, c := range clubs {
		byID[c.ID] = c
	}

	topTitleClubs := 0
	secondTitleClubs := 0
	clubCount := 0
	for _, c := range clubs {
		if c.CurrentNameID != "" {
			continue // former-name records contribute through their current club
		}
		clubCount++
		var formers []club.Club
		for _, formerID := range c.FormerNameIDs {
			if former, ok := byID[formerID]; ok {
				formers = append(formers, former)
			}
		}
		career := club.MergeCareer(c, formers)
		if career.ContinentalTopTitles > 0 {
			topTitleClubs++
		}
		if career.ContinentalSecondTitles > 0 {
			secondTitleClubs++
		}
	}

	maxTier := 0
	for _, lg := range leagues {
		if lg.Tier > maxTier {
			maxTier = lg.Tier
		}
	}

	topFlightTeams, err := s.latestTopFlightTeamCount(ctx, nat.ID)
	if err != nil {
		return NationStrengthReport{}, err
	}

	score := ranking.StrengthScore(ranking.StrengthInput{
		Membership:         nat.Membership,
		CoefficientRank:    nat.CoefficientRank,
		TopTitleClubs:      topTitleClubs,
		SecondTitleClubs:   secondTitleClubs,
		MaxLeagueTier:      maxTier,
		TopFlightTeamCount: topFlightTeams,
	})

	report := NationStrengthReport{
		NationID:        nat.ID,
		Nation:          nat.Name,
		Score:           score,
		Band:            ranking.StrengthBand(score),
		CoefficientRank: nat.CoefficientRank,
		ClubCount:       clubCount,
		LeagueCount:     len(leagues),
		MaxTier:         maxTier,
		TopFlightTeams:  topFlightTeams,
	}

	if s.estimator != nil {
		estimate, err := s.estimator.EstimateProClubs(ctx, EstimateInput{
			ClubCount:   clubCount,
			LeagueCount: len(leagues),
			Membership:  nat.Membership,
			MaxTier:     maxTier,
			Population:  nat.Population,
			AreaKM2:     nat.AreaKM2,
		})
		if err != nil {
			s.logger.WarnContext(ctx, "population estimate unavailable",
				"nation_id", nat.ID,
				"error", err,
			)
		} else {
			report.EstimatedProClubs = estimate
		}
	}

	return report, nil
}

func (s *RankingService) latestTopFlightTeamCount(ctx context.Context, nationID string) (int, error) {
	seasons, err := s.seasonRepo.ListByNationAndTier(ctx, nationID, 1)
	if err != nil {
		return 0, fmt.Errorf("list top-flight seasons: %w", err)
	}
	if len(seasons) == 0 {
		return 0, nil
	}

	latest := seasons[0]
	for _, candidate := range seasons[1:] {
		if candidate.Year > latest.Year {
			latest = candidate
		}
	}

	entries, err := s.entryRepo.ListBySeason(ctx, latest.ID)
	if err != nil {
		return 0, fmt.Errorf("list entries for season: %w", err)
	}
	return len(entries), nil
}

// effectiveClubView pairs a club record with its lineage-merged career
// so grouping never double-counts a renamed club.
type effectiveClubView struct {
	record club.Club
	career club.Career
}

func (s *RankingService) effectiveClubs(ctx context.Context) ([]effectiveClubView, error) {
	clubs, err := s.clubRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	byID := make(map[string]club.Club, len(clubs))
	for _, c := range clubs {
		byID[c.ID] = c
	}

	out := make([]effectiveClubView, 0, len(clubs))
	for _, c := range clubs {
		if c.CurrentNameID != "" {
			continue
		}
		var formers []club.Club
		for _, formerID := range c.FormerNameIDs {
			if former, ok := byID[formerID]; ok {
				formers = append(formers, former)
			}
		}
		out = append(out, effectiveClubView{record: c, career: club.MergeCareer(c, formers)})
	}
	return out, nil
}

func locationKey(c club.Club, level LocationLevel) string {
	switch level {
	case LevelRegion:
		return strings.TrimSpace(c.Region)
	case LevelDistrict:
		return strings.TrimSpace(c.District)
	case LevelSettlement:
		return strings.TrimSpace(c.Settlement)
	default:
		return ""
	}
}

// effectiveRank turns "no published rank" into a bottom-of-list
// sentinel for ordering.
func effectiveRank(rank int) int {
	if rank <= 0 {
		return 1 << 30
	}
	return rank
}
