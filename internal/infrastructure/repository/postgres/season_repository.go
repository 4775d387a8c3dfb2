package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footyrecords/club-history/internal/domain/season"
)

const seasonColumns = `id, league_id, nation_id, year, tier, division_name, division_group,
promotion_spots, relegation_spots, playoff_start, playoff_end,
champion_name, promoted_names, relegated_names`

const entryColumns = `id, season_id, club_id, club_name, year, tier, position,
played, won, drawn, lost, goals_for, goals_against, goal_difference, points, status`

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	var row seasonModel
	query := `SELECT ` + seasonColumns + ` FROM seasons WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, seasonID); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SeasonRepository) FindByDivision(ctx context.Context, leagueID, year, divisionName string) (season.Season, bool, error) {
	var row seasonModel
	query := `SELECT ` + seasonColumns + ` FROM seasons
WHERE league_id = $1 AND year = $2 AND LOWER(division_name) = LOWER($3)`
	if err := r.db.GetContext(ctx, &row, query, leagueID, year, divisionName); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("find season by division: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueID string) ([]season.Season, error) {
	var rows []seasonModel
	query := `SELECT ` + seasonColumns + ` FROM seasons WHERE league_id = $1 ORDER BY year ASC, division_name ASC`
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list seasons by league: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) ListByNationAndTier(ctx context.Context, nationID string, tier int) ([]season.Season, error) {
	var rows []seasonModel
	query := `SELECT ` + seasonColumns + ` FROM seasons WHERE nation_id = $1 AND tier = $2 ORDER BY year ASC, division_name ASC`
	if err := r.db.SelectContext(ctx, &rows, query, nationID, tier); err != nil {
		return nil, fmt.Errorf("list seasons by nation and tier: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type EntryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) ListBySeason(ctx context.Context, seasonID string) ([]season.TableEntry, error) {
	var rows []tableEntryModel
	query := `SELECT ` + entryColumns + ` FROM league_table_entries WHERE season_id = $1 ORDER BY position ASC`
	if err := r.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list entries by season: %w", err)
	}

	return entriesFromRows(rows), nil
}

func (r *EntryRepository) ListByClub(ctx context.Context, clubID string) ([]season.TableEntry, error) {
	var rows []tableEntryModel
	query := `SELECT ` + entryColumns + ` FROM league_table_entries WHERE club_id = $1 ORDER BY year ASC`
	if err := r.db.SelectContext(ctx, &rows, query, clubID); err != nil {
		return nil, fmt.Errorf("list entries by club: %w", err)
	}

	return entriesFromRows(rows), nil
}

func (r *EntryRepository) ListByClubs(ctx context.Context, clubIDs []string) ([]season.TableEntry, error) {
	if len(clubIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+entryColumns+` FROM league_table_entries WHERE club_id IN (?) ORDER BY year ASC`, clubIDs)
	if err != nil {
		return nil, fmt.Errorf("build list entries by clubs query: %w", err)
	}

	var rows []tableEntryModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list entries by clubs: %w", err)
	}

	return entriesFromRows(rows), nil
}

func entriesFromRows(rows []tableEntryModel) []season.TableEntry {
	out := make([]season.TableEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
