package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/footyrecords/club-history/internal/usecase"
)

type nationDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code,omitempty"`
	Membership      string `json:"membership"`
	CoefficientRank int    `json:"coefficientRank,omitempty"`
}

func (h *Handler) ListNations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNations")
	defer span.End()

	nations, err := h.archiveService.ListNations(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list nations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]nationDTO, 0, len(nations))
	for _, n := range nations {
		items = append(items, nationDTO{
			ID:              n.ID,
			Name:            n.Name,
			Code:            n.Code,
			Membership:      string(n.Membership),
			CoefficientRank: n.CoefficientRank,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

type leagueDTO struct {
	ID              string `json:"id"`
	NationID        string `json:"nationId"`
	Name            string `json:"name"`
	Tier            int    `json:"tier"`
	PromotionSpots  int    `json:"promotionSpots"`
	RelegationSpots int    `json:"relegationSpots"`
	PlayoffStart    int    `json:"playoffStart,omitempty"`
	PlayoffEnd      int    `json:"playoffEnd,omitempty"`
}

func (h *Handler) ListLeaguesByNation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaguesByNation")
	defer span.End()

	nationID := r.PathValue("nationID")
	leagues, err := h.archiveService.ListLeaguesByNation(ctx, nationID)
	if err != nil {
		if !errors.Is(err, usecase.ErrNotFound) {
			h.logger.WarnContext(ctx, "list leagues failed", "nation_id", nationID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, lg := range leagues {
		items = append(items, leagueDTO{
			ID:              lg.ID,
			NationID:        lg.NationID,
			Name:            lg.Name,
			Tier:            lg.Tier,
			PromotionSpots:  lg.PromotionSpots,
			RelegationSpots: lg.RelegationSpots,
			PlayoffStart:    lg.PlayoffStart,
			PlayoffEnd:      lg.PlayoffEnd,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

type recalcRequest struct {
	ClubIDs []string `json:"clubIds" validate:"required,min=1,dive,required"`
}

// RecalculateStability forces a stability refresh for specific clubs,
// typically after a queue worker picked up a published recalc job.
func (h *Handler) RecalculateStability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateStability")
	defer span.End()

	var req recalcRequest
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

	if err := h.stabilityService.Recalculate(ctx, req.ClubIDs); err != nil {
		h.logger.WarnContext(ctx, "stability recalc failed", "club_count", len(req.ClubIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"recalculated": len(req.ClubIDs)})
}
