package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footyrecords/club-history/internal/domain/club"
)

const clubColumns = `id, name, nation_id, region, district, settlement,
current_league_id, last_season_year,
league_titles, title_years, lower_tier_titles, lower_tier_title_years,
domestic_cup_titles, domestic_cup_runner_ups, domestic_cup_title_years, domestic_cup_best_finish,
continental_top_titles, continental_top_runner_ups, continental_top_appearances, continental_top_title_years,
continental_second_titles, continental_second_runner_ups, continental_second_appearances, continental_second_title_years,
continental_best_finish,
seasons_played, total_wins, total_draws, total_losses, total_goals_scored, total_goals_conceded,
promotions, relegations, seasons_top_flight, seasons_top_flight_adj, stability_index,
best_finish_position, best_finish_tier, best_finish_year,
predecessor_ids, former_name_ids, successor_id, current_name_id`

const upsertClubQuery = `INSERT INTO clubs (` + clubColumns + `) VALUES (
:id, :name, :nation_id, :region, :district, :settlement,
:current_league_id, :last_season_year,
:league_titles, :title_years, :lower_tier_titles, :lower_tier_title_years,
:domestic_cup_titles, :domestic_cup_runner_ups, :domestic_cup_title_years, :domestic_cup_best_finish,
:continental_top_titles, :continental_top_runner_ups, :continental_top_appearances, :continental_top_title_years,
:continental_second_titles, :continental_second_runner_ups, :continental_second_appearances, :continental_second_title_years,
:continental_best_finish,
:seasons_played, :total_wins, :total_draws, :total_losses, :total_goals_scored, :total_goals_conceded,
:promotions, :relegations, :seasons_top_flight, :seasons_top_flight_adj, :stability_index,
:best_finish_position, :best_finish_tier, :best_finish_year,
:predecessor_ids, :former_name_ids, :successor_id, :current_name_id
) ON CONFLICT (id) DO UPDATE SET
name = EXCLUDED.name,
nation_id = EXCLUDED.nation_id,
region = EXCLUDED.region,
district = EXCLUDED.district,
settlement = EXCLUDED.settlement,
current_league_id = EXCLUDED.current_league_id,
last_season_year = EXCLUDED.last_season_year,
league_titles = EXCLUDED.league_titles,
title_years = EXCLUDED.title_years,
lower_tier_titles = EXCLUDED.lower_tier_titles,
lower_tier_title_years = EXCLUDED.lower_tier_title_years,
domestic_cup_titles = EXCLUDED.domestic_cup_titles,
domestic_cup_runner_ups = EXCLUDED.domestic_cup_runner_ups,
domestic_cup_title_years = EXCLUDED.domestic_cup_title_years,
domestic_cup_best_finish = EXCLUDED.domestic_cup_best_finish,
continental_top_titles = EXCLUDED.continental_top_titles,
continental_top_runner_ups = EXCLUDED.continental_top_runner_ups,
continental_top_appearances = EXCLUDED.continental_top_appearances,
continental_top_title_years = EXCLUDED.continental_top_title_years,
continental_second_titles = EXCLUDED.continental_second_titles,
continental_second_runner_ups = EXCLUDED.continental_second_runner_ups,
continental_second_appearances = EXCLUDED.continental_second_appearances,
continental_second_title_years = EXCLUDED.continental_second_title_years,
continental_best_finish = EXCLUDED.continental_best_finish,
seasons_played = EXCLUDED.seasons_played,
total_wins = EXCLUDED.total_wins,
total_draws = EXCLUDED.total_draws,
total_losses = EXCLUDED.total_losses,
total_goals_scored = EXCLUDED.total_goals_scored,
total_goals_conceded = EXCLUDED.total_goals_conceded,
promotions = EXCLUDED.promotions,
relegations = EXCLUDED.relegations,
seasons_top_flight = EXCLUDED.seasons_top_flight,
seasons_top_flight_adj = EXCLUDED.seasons_top_flight_adj,
stability_index = EXCLUDED.stability_index,
best_finish_position = EXCLUDED.best_finish_position,
best_finish_tier = EXCLUDED.best_finish_tier,
best_finish_year = EXCLUDED.best_finish_year,
predecessor_ids = EXCLUDED.predecessor_ids,
former_name_ids = EXCLUDED.former_name_ids,
successor_id = EXCLUDED.successor_id,
current_name_id = EXCLUDED.current_name_id`

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	var row clubModel
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, clubID); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("get club by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ClubRepository) ListByNation(ctx context.Context, nationID string) ([]club.Club, error) {
	var rows []clubModel
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE nation_id = $1 ORDER BY name ASC`
	if err := r.db.SelectContext(ctx, &rows, query, nationID); err != nil {
		return nil, fmt.Errorf("list clubs by nation: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ClubRepository) ListAll(ctx context.Context) ([]club.Club, error) {
	var rows []clubModel
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY nation_id ASC, name ASC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ClubRepository) UpdateStability(ctx context.Context, clubID string, index float64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE clubs SET stability_index = $1 WHERE id = $2`, index, clubID)
	if err != nil {
		return fmt.Errorf("update club stability: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update club stability: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update club stability: club %s not found", clubID)
	}

	return nil
}
