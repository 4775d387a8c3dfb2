package httpapi

import (
	"errors"
	"net/http"

	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/season"
	"github.com/footyrecords/club-history/internal/usecase"
)

type careerDTO struct {
	ClubID      string   `json:"clubId"`
	Name        string   `json:"name"`
	FormerNames []string `json:"formerNames,omitempty"`

	LeagueTitles        int    `json:"leagueTitles"`
	TitleYears          string `json:"titleYears,omitempty"`
	LowerTierTitles     int    `json:"lowerTierTitles"`
	LowerTierTitleYears string `json:"lowerTierTitleYears,omitempty"`

	DomesticCupTitles     int    `json:"domesticCupTitles"`
	DomesticCupRunnerUps  int    `json:"domesticCupRunnerUps"`
	DomesticCupTitleYears string `json:"domesticCupTitleYears,omitempty"`
	DomesticCupBestFinish string `json:"domesticCupBestFinish,omitempty"`

	ContinentalTopTitles      int    `json:"continentalTopTitles"`
	ContinentalTopRunnerUps   int    `json:"continentalTopRunnerUps"`
	ContinentalTopAppearances int    `json:"continentalTopAppearances"`
	ContinentalTopTitleYears  string `json:"continentalTopTitleYears,omitempty"`

	ContinentalSecondTitles      int    `json:"continentalSecondTitles"`
	ContinentalSecondRunnerUps   int    `json:"continentalSecondRunnerUps"`
	ContinentalSecondAppearances int    `json:"continentalSecondAppearances"`
	ContinentalSecondTitleYears  string `json:"continentalSecondTitleYears,omitempty"`

	ContinentalBestFinish string `json:"continentalBestFinish,omitempty"`

	SeasonsPlayed      int `json:"seasonsPlayed"`
	TotalWins          int `json:"totalWins"`
	TotalDraws         int `json:"totalDraws"`
	TotalLosses        int `json:"totalLosses"`
	TotalGoalsScored   int `json:"totalGoalsScored"`
	TotalGoalsConceded int `json:"totalGoalsConceded"`
	Promotions         int `json:"promotions"`
	Relegations        int `json:"relegations"`
	SeasonsTopFlight   int `json:"seasonsTopFlight"`

	BestFinishPosition int    `json:"bestFinishPosition,omitempty"`
	BestFinishTier     int    `json:"bestFinishTier,omitempty"`
	BestFinishYear     string `json:"bestFinishYear,omitempty"`
}

type historyEntryDTO struct {
	SeasonID string `json:"seasonId"`
	ClubName string `json:"clubName"`
	Year     string `json:"year"`
	Tier     int    `json:"tier"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
	Status   string `json:"status"`
}

type careerViewDTO struct {
	Career       careerDTO         `json:"career"`
	Predecessors []string          `json:"predecessors,omitempty"`
	History      []historyEntryDTO `json:"history"`
}

func (h *Handler) GetClubCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubCareer")
	defer span.End()

	clubID := r.PathValue("clubID")
	view, err := h.careerService.EffectiveCareer(ctx, clubID)
	if err != nil {
		if !errors.Is(err, usecase.ErrNotFound) {
			h.logger.WarnContext(ctx, "get club career failed", "club_id", clubID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, careerViewDTO{
		Career:       careerToDTO(view.Career),
		Predecessors: view.Predecessors,
		History:      historyToDTO(view.History),
	})
}

func careerToDTO(c club.Career) careerDTO {
	return careerDTO{
		ClubID:                       c.ClubID,
		Name:                         c.Name,
		FormerNames:                  c.FormerNames,
		LeagueTitles:                 c.LeagueTitles,
		TitleYears:                   c.TitleYears,
		LowerTierTitles:              c.LowerTierTitles,
		LowerTierTitleYears:          c.LowerTierTitleYears,
		DomesticCupTitles:            c.DomesticCupTitles,
		DomesticCupRunnerUps:         c.DomesticCupRunnerUps,
		DomesticCupTitleYears:        c.DomesticCupTitleYears,
		DomesticCupBestFinish:        c.DomesticCupBestFinish,
		ContinentalTopTitles:         c.ContinentalTopTitles,
		ContinentalTopRunnerUps:      c.ContinentalTopRunnerUps,
		ContinentalTopAppearances:    c.ContinentalTopAppearances,
		ContinentalTopTitleYears:     c.ContinentalTopTitleYears,
		ContinentalSecondTitles:      c.ContinentalSecondTitles,
		ContinentalSecondRunnerUps:   c.ContinentalSecondRunnerUps,
		ContinentalSecondAppearances: c.ContinentalSecondAppearances,
		ContinentalSecondTitleYears:  c.ContinentalSecondTitleYears,
		ContinentalBestFinish:        c.ContinentalBestFinish,
		SeasonsPlayed:                c.SeasonsPlayed,
		TotalWins:                    c.TotalWins,
		TotalDraws:                   c.TotalDraws,
		TotalLosses:                  c.TotalLosses,
		TotalGoalsScored:             c.TotalGoalsScored,
		TotalGoalsConceded:           c.TotalGoalsConceded,
		Promotions:                   c.Promotions,
		Relegations:                  c.Relegations,
		SeasonsTopFlight:             c.SeasonsTopFlight,
		BestFinishPosition:           c.BestFinishPosition,
		BestFinishTier:               c.BestFinishTier,
		BestFinishYear:               c.BestFinishYear,
	}
}

func historyToDTO(entries []season.TableEntry) []historyEntryDTO {
	out := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryDTO{
			SeasonID: entry.SeasonID,
			ClubName: entry.ClubName,
			Year:     entry.Year,
			Tier:     entry.Tier,
			Position: entry.Position,
			Points:   entry.Points,
			Status:   string(entry.Status),
		})
	}
	return out
}
