package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/footyrecords/club-history/internal/usecase"
)

type locationRankingDTO struct {
	Location      string `json:"location"`
	Clubs         int    `json:"clubs"`
	LeagueTitles  int    `json:"leagueTitles"`
	CupTitles     int    `json:"cupTitles"`
	Continental   int    `json:"continental"`
	Promotions    int    `json:"promotions"`
	TrophyScore   int    `json:"trophyScore"`
	ActivityScore int    `json:"activityScore"`
}

func (h *Handler) GetLocationRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLocationRankings")
	defer span.End()

	level, err := parseLocationLevel(r.PathValue("level"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rankings, err := h.rankingService.LocationTrophyRanking(ctx, level)
	if err != nil {
		h.logger.WarnContext(ctx, "location rankings failed", "level", level, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]locationRankingDTO, 0, len(rankings))
	for _, row := range rankings {
		items = append(items, locationRankingDTO{
			Location:      row.Location,
			Clubs:         row.Clubs,
			LeagueTitles:  row.LeagueTitles,
			CupTitles:     row.CupTitles,
			Continental:   row.Continental,
			Promotions:    row.Promotions,
			TrophyScore:   row.TrophyScore,
			ActivityScore: row.ActivityScore,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

type recentFormDTO struct {
	Location   string  `json:"location"`
	Level      string  `json:"level"`
	RecentForm float64 `json:"recentForm"`
}

func (h *Handler) GetLocationRecentForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLocationRecentForm")
	defer span.End()

	level, err := parseLocationLevel(r.PathValue("level"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	location := r.PathValue("location")

	form, err := h.rankingService.RecentForm(ctx, level, location)
	if err != nil {
		if !errors.Is(err, usecase.ErrNotFound) {
			h.logger.WarnContext(ctx, "location recent form failed", "level", level, "location", location, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recentFormDTO{
		Location:   strings.TrimSpace(location),
		Level:      string(level),
		RecentForm: form,
	})
}

type nationStrengthDTO struct {
	NationID          string `json:"nationId"`
	Nation            string `json:"nation"`
	Score             int    `json:"score"`
	Band              string `json:"band"`
	CoefficientRank   int    `json:"coefficientRank,omitempty"`
	ClubCount         int    `json:"clubCount"`
	LeagueCount       int    `json:"leagueCount"`
	MaxTier           int    `json:"maxTier"`
	TopFlightTeams    int    `json:"topFlightTeams"`
	EstimatedProClubs int    `json:"estimatedProClubs,omitempty"`
}

func (h *Handler) GetNationStrength(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNationStrength")
	defer span.End()

	nationID := r.PathValue("nationID")
	report, err := h.rankingService.NationStrength(ctx, nationID)
	if err != nil {
		if !errors.Is(err, usecase.ErrNotFound) {
			h.logger.WarnContext(ctx, "nation strength failed", "nation_id", nationID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nationStrengthToDTO(report))
}

func (h *Handler) GetNationStrengthLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNationStrengthLeaderboard")
	defer span.End()

	reports, err := h.rankingService.NationStrengthLeaderboard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "nation strength leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]nationStrengthDTO, 0, len(reports))
	for _, report := range reports {
		items = append(items, nationStrengthToDTO(report))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func nationStrengthToDTO(report usecase.NationStrengthReport) nationStrengthDTO {
	return nationStrengthDTO{
		NationID:          report.NationID,
		Nation:            report.Nation,
		Score:             report.Score,
		Band:              report.Band,
		CoefficientRank:   report.CoefficientRank,
		ClubCount:         report.ClubCount,
		LeagueCount:       report.LeagueCount,
		MaxTier:           report.MaxTier,
		TopFlightTeams:    report.TopFlightTeams,
		EstimatedProClubs: report.EstimatedProClubs,
	}
}

func parseLocationLevel(raw string) (usecase.LocationLevel, error) {
	switch usecase.LocationLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case usecase.LevelRegion:
		return usecase.LevelRegion, nil
	case usecase.LevelDistrict:
		return usecase.LevelDistrict, nil
	case usecase.LevelSettlement:
		return usecase.LevelSettlement, nil
	default:
		return "", fmt.Errorf("%w: unknown location level %q", usecase.ErrInvalidInput, raw)
	}
}
