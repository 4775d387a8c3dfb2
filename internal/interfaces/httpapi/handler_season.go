package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/footyrecords/club-history/internal/domain/season"
	"github.com/footyrecords/club-history/internal/usecase"
)

// rowPalette is the default table highlight palette. A blank value means
// no highlight for that finish.
var rowPalette = map[season.Status]string{
	season.StatusChampion:      "#FFD700",
	season.StatusPromoted:      "#90EE90",
	season.StatusPlayoffWinner: "#90EE90",
	season.StatusPlayoff:       "#ADD8E6",
	season.StatusRelegated:     "#FFA07A",
}

type submitSeasonRequest struct {
	Year      string                  `json:"year" validate:"required"`
	Divisions []submitDivisionRequest `json:"divisions" validate:"required,min=1,dive"`
}

type submitDivisionRequest struct {
	Name            string             `json:"name"`
	Group           string             `json:"group"`
	Tier            int                `json:"tier" validate:"min=0"`
	PromotionSpots  int                `json:"promotionSpots" validate:"min=0"`
	RelegationSpots int                `json:"relegationSpots" validate:"min=0"`
	PlayoffStart    int                `json:"playoffStart" validate:"min=0"`
	PlayoffEnd      int                `json:"playoffEnd" validate:"min=0"`
	Rows            []submitRowRequest `json:"rows" validate:"required,min=1,dive"`
}

type submitRowRequest struct {
	Position     int    `json:"position"`
	ClubName     string `json:"clubName"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	Points       int    `json:"points"`
	Status       string `json:"status"`
}

type divisionResultDTO struct {
	Division string   `json:"division"`
	SeasonID string   `json:"seasonId"`
	Entries  int      `json:"entries"`
	ClubIDs  []string `json:"clubIds"`
	Error    string   `json:"error,omitempty"`
}

func (h *Handler) SubmitSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitSeason")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req submitSeasonRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sub := usecase.SeasonSubmission{
		LeagueID:  leagueID,
		Year:      req.Year,
		Divisions: make([]usecase.DivisionSubmission, 0, len(req.Divisions)),
	}
	for _, div := range req.Divisions {
		rows := make([]usecase.RowSubmission, 0, len(div.Rows))
		for _, row := range div.Rows {
			rows = append(rows, usecase.RowSubmission{
				Position:     row.Position,
				ClubName:     row.ClubName,
				Won:          row.Won,
				Drawn:        row.Drawn,
				Lost:         row.Lost,
				GoalsFor:     row.GoalsFor,
				GoalsAgainst: row.GoalsAgainst,
				Points:       row.Points,
				Status:       season.Status(strings.TrimSpace(row.Status)),
			})
		}
		sub.Divisions = append(sub.Divisions, usecase.DivisionSubmission{
			Name:            div.Name,
			Group:           div.Group,
			Tier:            div.Tier,
			PromotionSpots:  div.PromotionSpots,
			RelegationSpots: div.RelegationSpots,
			PlayoffStart:    div.PlayoffStart,
			PlayoffEnd:      div.PlayoffEnd,
			Rows:            rows,
		})
	}

	results, err := h.ingestionService.SubmitSeason(ctx, sub)
	if err != nil && len(results) == 0 {
		h.logger.WarnContext(ctx, "season submission rejected", "league_id", leagueID, "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionResultDTO, 0, len(results))
	for _, result := range results {
		item := divisionResultDTO{
			Division: result.Division,
			SeasonID: result.SeasonID,
			Entries:  result.Entries,
			ClubIDs:  result.ClubIDs,
		}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}
		items = append(items, item)
	}

	if err != nil {
		// Divisions before the failing one are committed; report them
		// alongside the failure instead of discarding the outcome.
		h.logger.WarnContext(ctx, "season submission partially failed", "league_id", leagueID, "year", req.Year, "error", err)
		mapped := mapError(ctx, err)
		writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
			APIVersion: googleAPIVersion,
			Data:       items,
			Error: &googleErrorBody{
				Code:    mapped.HTTPStatus,
				Message: err.Error(),
				Status:  mapped.Status,
				Errors: []googleErrorItem{
					{Domain: errorDomain, Reason: mapped.Reason, Message: err.Error()},
				},
			},
		})
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, items)
}

type seasonDTO struct {
	ID              string   `json:"id"`
	LeagueID        string   `json:"leagueId"`
	Year            string   `json:"year"`
	Tier            int      `json:"tier"`
	DivisionName    string   `json:"divisionName"`
	DivisionGroup   string   `json:"divisionGroup,omitempty"`
	PromotionSpots  int      `json:"promotionSpots"`
	RelegationSpots int      `json:"relegationSpots"`
	ChampionName    string   `json:"championName,omitempty"`
	PromotedNames   []string `json:"promotedNames,omitempty"`
	RelegatedNames  []string `json:"relegatedNames,omitempty"`
}

func (h *Handler) ListSeasonsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonsByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	seasons, err := h.archiveService.ListSeasonsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

type tableEntryDTO struct {
	Position       int    `json:"position"`
	ClubID         string `json:"clubId"`
	ClubName       string `json:"clubName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Status         string `json:"status"`
	Highlight      string `json:"highlight,omitempty"`
}

type seasonTableDTO struct {
	Season  seasonDTO       `json:"season"`
	Entries []tableEntryDTO `json:"entries"`
}

func (h *Handler) GetSeasonTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonTable")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	table, err := h.archiveService.GetSeasonTable(ctx, seasonID)
	if err != nil {
		if !errors.Is(err, usecase.ErrNotFound) {
			h.logger.WarnContext(ctx, "get season table failed", "season_id", seasonID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	entries := make([]tableEntryDTO, 0, len(table.Entries))
	for _, entry := range table.Entries {
		entries = append(entries, tableEntryDTO{
			Position:       entry.Position,
			ClubID:         entry.ClubID,
			ClubName:       entry.ClubName,
			Played:         entry.Played,
			Won:            entry.Won,
			Drawn:          entry.Drawn,
			Lost:           entry.Lost,
			GoalsFor:       entry.GoalsFor,
			GoalsAgainst:   entry.GoalsAgainst,
			GoalDifference: entry.GoalDifference,
			Points:         entry.Points,
			Status:         string(entry.Status),
			Highlight:      season.HighlightColor(entry.Status, rowPalette),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, seasonTableDTO{
		Season:  seasonToDTO(table.Season),
		Entries: entries,
	})
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{
		ID:              s.ID,
		LeagueID:        s.LeagueID,
		Year:            s.Year,
		Tier:            s.Tier,
		DivisionName:    s.DivisionName,
		DivisionGroup:   s.DivisionGroup,
		PromotionSpots:  s.PromotionSpots,
		RelegationSpots: s.RelegationSpots,
		ChampionName:    s.ChampionName,
		PromotedNames:   append([]string(nil), s.PromotedNames...),
		RelegatedNames:  append([]string(nil), s.RelegatedNames...),
	}
}
