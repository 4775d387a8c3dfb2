package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footyrecords/club-history/internal/domain/league"
)

const leagueColumns = `id, nation_id, name, tier, promotion_spots, relegation_spots, playoff_start, playoff_end`

type leagueModel struct {
	ID              string `db:"id"`
	NationID        string `db:"nation_id"`
	Name            string `db:"name"`
	Tier            int    `db:"tier"`
	PromotionSpots  int    `db:"promotion_spots"`
	RelegationSpots int    `db:"relegation_spots"`
	PlayoffStart    int    `db:"playoff_start"`
	PlayoffEnd      int    `db:"playoff_end"`
}

func (m leagueModel) toDomain() league.League {
	return league.League{
		ID:              m.ID,
		NationID:        m.NationID,
		Name:            m.Name,
		Tier:            m.Tier,
		PromotionSpots:  m.PromotionSpots,
		RelegationSpots: m.RelegationSpots,
		PlayoffStart:    m.PlayoffStart,
		PlayoffEnd:      m.PlayoffEnd,
	}
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	var row leagueModel
	query := `SELECT ` + leagueColumns + ` FROM leagues WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, leagueID); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) ListByNation(ctx context.Context, nationID string) ([]league.League, error) {
	var rows []leagueModel
	query := `SELECT ` + leagueColumns + ` FROM leagues WHERE nation_id = $1 ORDER BY tier ASC, name ASC`
	if err := r.db.SelectContext(ctx, &rows, query, nationID); err != nil {
		return nil, fmt.Errorf("list leagues by nation: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
