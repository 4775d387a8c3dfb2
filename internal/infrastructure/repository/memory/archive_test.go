package memory

import (
	"context"
	"testing"

	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/season"
)

func validSeason(id string) season.Season {
	return season.Season{
		ID:              id,
		LeagueID:        LeagueIDLiga1,
		NationID:        NationIDIndonesia,
		Year:            "1994",
		Tier:            1,
		DivisionName:    "Liga 1",
		RelegationSpots: 3,
	}
}

func TestArchive_SaveDivision(t *testing.T) {
	t.Parallel()

	archive := NewArchive()
	ctx := context.Background()

	entries := []season.TableEntry{
		{ID: "e-1", SeasonID: "s-1", ClubID: "c-1", ClubName: "Persija", Position: 1},
	}
	clubs := []club.Club{
		{ID: "c-1", Name: "Persija", NationID: NationIDIndonesia, SeasonsPlayed: 1},
	}
	if err := archive.SaveDivision(ctx, validSeason("s-1"), entries, clubs); err != nil {
		t.Fatalf("save division: %v", err)
	}

	stored, exists, err := archive.Seasons().GetByID(ctx, "s-1")
	if err != nil || !exists {
		t.Fatalf("expected stored season, exists=%v err=%v", exists, err)
	}
	if stored.Year != "1994" {
		t.Fatalf("expected year 1994, got %s", stored.Year)
	}

	if _, exists, _ := archive.Clubs().GetByID(ctx, "c-1"); !exists {
		t.Fatalf("expected committed club record")
	}

	listed, err := archive.Entries().ListBySeason(ctx, "s-1")
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected 1 entry, got %d (err=%v)", len(listed), err)
	}
}

func TestArchive_SaveDivision_RejectsDuplicateSeason(t *testing.T) {
	t.Parallel()

	archive := NewArchive()
	ctx := context.Background()

	if err := archive.SaveDivision(ctx, validSeason("s-1"), nil, nil); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := archive.SaveDivision(ctx, validSeason("s-1"), nil, nil); err == nil {
		t.Fatalf("expected duplicate season id to be rejected")
	}
}

func TestArchive_SaveDivision_RejectsDuplicateDivisionIdentity(t *testing.T) {
	t.Parallel()

	archive := NewArchive()
	ctx := context.Background()

	if err := archive.SaveDivision(ctx, validSeason("s-1"), nil, nil); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Fresh season id, same (league, year, division) identity. The SQL
	// schema refuses this, so the in-memory store has to as well.
	second := validSeason("s-2")
	second.DivisionName = "LIGA 1"
	if err := archive.SaveDivision(ctx, second, nil, nil); err == nil {
		t.Fatalf("expected repeated league/year/division identity to be rejected")
	}
	if _, exists, _ := archive.Seasons().GetByID(ctx, "s-2"); exists {
		t.Fatalf("second season must not be committed")
	}
}

func TestArchive_SaveDivision_BadBatchLeavesNothingBehind(t *testing.T) {
	t.Parallel()

	archive := NewArchive()
	ctx := context.Background()

	entries := []season.TableEntry{
		{ID: "e-1", SeasonID: "other-season", ClubID: "c-1", ClubName: "Persija", Position: 1},
	}
	clubs := []club.Club{
		{ID: "c-1", Name: "Persija", NationID: NationIDIndonesia, SeasonsPlayed: 1},
	}
	if err := archive.SaveDivision(ctx, validSeason("s-1"), entries, clubs); err == nil {
		t.Fatalf("expected mismatched entry season to be rejected")
	}

	if _, exists, _ := archive.Seasons().GetByID(ctx, "s-1"); exists {
		t.Fatalf("season must not be committed from a rejected batch")
	}
	if _, exists, _ := archive.Clubs().GetByID(ctx, "c-1"); exists {
		t.Fatalf("club must not be committed from a rejected batch")
	}
}

func TestClubStore_UpdateStability(t *testing.T) {
	t.Parallel()

	archive := NewArchive()
	ctx := context.Background()

	archive.AddClub(club.Club{ID: "c-1", Name: "Persija", NationID: NationIDIndonesia})

	if err := archive.Clubs().UpdateStability(ctx, "c-1", 0.7); err != nil {
		t.Fatalf("update stability: %v", err)
	}
	stored, _, _ := archive.Clubs().GetByID(ctx, "c-1")
	if stored.StabilityIndex != 0.7 {
		t.Fatalf("expected stability 0.7, got %v", stored.StabilityIndex)
	}

	if err := archive.Clubs().UpdateStability(ctx, "missing", 0.5); err == nil {
		t.Fatalf("expected unknown club to be rejected")
	}
}

func TestEntryStore_ListByClubs(t *testing.T) {
	t.Parallel()

	archive := NewArchive()
	ctx := context.Background()

	first := validSeason("s-1")
	first.Year = "1990"
	entries := []season.TableEntry{
		{ID: "e-1", SeasonID: "s-1", ClubID: "c-1", Position: 1},
		{ID: "e-2", SeasonID: "s-1", ClubID: "c-2", Position: 2},
		{ID: "e-3", SeasonID: "s-1", ClubID: "c-3", Position: 3},
	}
	if err := archive.SaveDivision(ctx, first, entries, nil); err != nil {
		t.Fatalf("save division: %v", err)
	}

	got, err := archive.Entries().ListByClubs(ctx, []string{"c-1", "c-3"})
	if err != nil {
		t.Fatalf("list by clubs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
}
