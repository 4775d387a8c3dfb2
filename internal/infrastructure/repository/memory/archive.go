package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/season"
)

// Archive is the in-memory document store for clubs, seasons and table
// entries. One mutex covers all three collections so a division batch
// commits all-or-nothing.
type Archive struct {
	mu      sync.RWMutex
	clubs   map[string]club.Club
	order   []string
	seasons map[string]season.Season
	entries map[string][]season.TableEntry // keyed by season id
}

func NewArchive() *Archive {
	return &Archive{
		clubs:   make(map[string]club.Club),
		seasons: make(map[string]season.Season),
		entries: make(map[string][]season.TableEntry),
	}
}

// SaveDivision commits one ingested division atomically. Validation runs
// against every record before the first write, so a bad batch leaves the
// archive untouched.
func (a *Archive) SaveDivision(_ context.Context, s season.Season, entries []season.TableEntry, clubs []club.Club) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := s.Validate(); err != nil {
		return fmt.Errorf("validate season: %w", err)
	}
	if _, exists := a.seasons[s.ID]; exists {
		return fmt.Errorf("season %s already stored", s.ID)
	}
	// Same uniqueness rule the SQL schema enforces, so both backends
	// refuse a repeated (league, year, division) identity.
	for _, existing := range a.seasons {
		if existing.LeagueID == s.LeagueID && existing.Year == s.Year && strings.EqualFold(existing.DivisionName, s.DivisionName) {
			return fmt.Errorf("division %q already stored for %s/%s", s.DivisionName, s.LeagueID, s.Year)
		}
	}
	for _, c := range clubs {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("validate club %s: %w", c.Name, err)
		}
	}
	for _, e := range entries {
		if e.SeasonID != s.ID {
			return fmt.Errorf("entry %s does not belong to season %s", e.ID, s.ID)
		}
	}

	a.seasons[s.ID] = s
	a.entries[s.ID] = append([]season.TableEntry(nil), entries...)
	for _, c := range clubs {
		if _, known := a.clubs[c.ID]; !known {
			a.order = append(a.order, c.ID)
		}
		a.clubs[c.ID] = c
	}
	return nil
}

// AddClub seeds or replaces one club record outside an ingestion batch.
// Used for seeding and for wiring lineage links in tests.
func (a *Archive) AddClub(c club.Club) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, known := a.clubs[c.ID]; !known {
		a.order = append(a.order, c.ID)
	}
	a.clubs[c.ID] = c
}
