package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/season"
)

const insertSeasonQuery = `INSERT INTO seasons (` + seasonColumns + `) VALUES (
:id, :league_id, :nation_id, :year, :tier, :division_name, :division_group,
:promotion_spots, :relegation_spots, :playoff_start, :playoff_end,
:champion_name, :promoted_names, :relegated_names)`

const insertEntryQuery = `INSERT INTO league_table_entries (` + entryColumns + `) VALUES (
:id, :season_id, :club_id, :club_name, :year, :tier, :position,
:played, :won, :drawn, :lost, :goals_for, :goals_against, :goal_difference, :points, :status)`

// ArchiveStore commits one division ingestion as a single transaction so
// a failed write never leaves a season without its table or its clubs.
type ArchiveStore struct {
	db *sqlx.DB
}

func NewArchiveStore(db *sqlx.DB) *ArchiveStore {
	return &ArchiveStore{db: db}
}

func (s *ArchiveStore) SaveDivision(ctx context.Context, record season.Season, entries []season.TableEntry, clubs []club.Club) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save division: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.NamedExecContext(ctx, insertSeasonQuery, toSeasonModel(record)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("season %s/%s %q already stored: %w", record.LeagueID, record.Year, record.DivisionName, err)
		}
		return fmt.Errorf("insert season: %w", err)
	}

	if len(entries) > 0 {
		rows := make([]tableEntryModel, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, toTableEntryModel(e))
		}
		if _, err := tx.NamedExecContext(ctx, insertEntryQuery, rows); err != nil {
			return fmt.Errorf("insert table entries: %w", err)
		}
	}

	for _, c := range clubs {
		if _, err := tx.NamedExecContext(ctx, upsertClubQuery, toClubModel(c)); err != nil {
			return fmt.Errorf("upsert club %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save division tx: %w", err)
	}

	return nil
}
