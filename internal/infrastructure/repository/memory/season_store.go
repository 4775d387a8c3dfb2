package memory

import (
	"context"
	"strings"

	"github.com/footyrecords/club-history/internal/domain/season"
)

// SeasonStore is the season-typed view over the archive.
type SeasonStore struct {
	archive *Archive
}

func (a *Archive) Seasons() *SeasonStore {
	return &SeasonStore{archive: a}
}

func (s *SeasonStore) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	record, ok := s.archive.seasons[seasonID]
	if !ok {
		return season.Season{}, false, nil
	}
	return record, true, nil
}

func (s *SeasonStore) FindByDivision(_ context.Context, leagueID, year, divisionName string) (season.Season, bool, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	for _, record := range s.archive.seasons {
		if record.LeagueID == leagueID && record.Year == year && strings.EqualFold(record.DivisionName, divisionName) {
			return record, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (s *SeasonStore) ListByLeague(_ context.Context, leagueID string) ([]season.Season, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	var out []season.Season
	for _, record := range s.archive.seasons {
		if record.LeagueID == leagueID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *SeasonStore) ListByNationAndTier(_ context.Context, nationID string, tier int) ([]season.Season, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	var out []season.Season
	for _, record := range s.archive.seasons {
		if record.NationID == nationID && record.Tier == tier {
			out = append(out, record)
		}
	}
	return out, nil
}

// EntryStore is the table-entry-typed view over the archive.
type EntryStore struct {
	archive *Archive
}

func (a *Archive) Entries() *EntryStore {
	return &EntryStore{archive: a}
}

func (s *EntryStore) ListBySeason(_ context.Context, seasonID string) ([]season.TableEntry, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	entries := s.archive.entries[seasonID]
	out := make([]season.TableEntry, 0, len(entries))
	out = append(out, entries...)
	return out, nil
}

func (s *EntryStore) ListByClub(_ context.Context, clubID string) ([]season.TableEntry, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	var out []season.TableEntry
	for _, entries := range s.archive.entries {
		for _, e := range entries {
			if e.ClubID == clubID {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func (s *EntryStore) ListByClubs(_ context.Context, clubIDs []string) ([]season.TableEntry, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	wanted := make(map[string]struct{}, len(clubIDs))
	for _, id := range clubIDs {
		wanted[id] = struct{}{}
	}

	var out []season.TableEntry
	for _, entries := range s.archive.entries {
		for _, e := range entries {
			if _, ok := wanted[e.ClubID]; ok {
				out = append(out, e)
			}
		}
	}
	return out, nil
}
