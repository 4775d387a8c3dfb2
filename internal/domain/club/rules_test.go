package club

import (
	"testing"

	"github.com/footyrecords/club-history/internal/domain/season"
)

func TestApplyDelta_TopTierTitle(t *testing.T) {
	t.Parallel()

	c := Club{ID: "c-1", Name: "Dynamo", NationID: "n-1"}
	c = ApplyDelta(c, Delta{
		ClubName: "Dynamo",
		Year:     "1990",
		LeagueID: "lg-1",
		Tier:     1,
		Position: 1,
		Won:      20, Drawn: 5, Lost: 5,
		GoalsFor: 60, GoalsAgainst: 20,
		Status: season.StatusChampion,
	})

	if c.LeagueTitles != 1 || c.LowerTierTitles != 0 {
		t.Fatalf("expected one top-tier title, got league=%d lower=%d", c.LeagueTitles, c.LowerTierTitles)
	}
	if c.TitleYears != "1990" {
		t.Fatalf("unexpected title years: %q", c.TitleYears)
	}
	if c.SeasonsPlayed != 1 || c.SeasonsTopFlight != 1 || c.SeasonsTopFlightAdj != 1 {
		t.Fatalf("unexpected season counters: played=%d top=%d adj=%d",
			c.SeasonsPlayed, c.SeasonsTopFlight, c.SeasonsTopFlightAdj)
	}
	if c.TotalWins != 20 || c.TotalGoalsScored != 60 || c.TotalGoalsConceded != 20 {
		t.Fatalf("unexpected totals: wins=%d gf=%d ga=%d",
			c.TotalWins, c.TotalGoalsScored, c.TotalGoalsConceded)
	}
	if c.CurrentLeagueID != "lg-1" || c.LastSeasonYear != "1990" {
		t.Fatalf("unexpected current pointers: league=%q year=%q", c.CurrentLeagueID, c.LastSeasonYear)
	}
}

func TestApplyDelta_LowerTierTitleSeparated(t *testing.T) {
	t.Parallel()

	c := ApplyDelta(Club{ID: "c-1"}, Delta{
		Year:     "1995",
		Tier:     3,
		Position: 1,
		Status:   season.StatusChampion,
	})

	if c.LeagueTitles != 0 || c.LowerTierTitles != 1 {
		t.Fatalf("tier-3 title must not count as league title: league=%d lower=%d",
			c.LeagueTitles, c.LowerTierTitles)
	}
	if c.LowerTierTitleYears != "1995" {
		t.Fatalf("unexpected lower-tier title years: %q", c.LowerTierTitleYears)
	}
	if c.SeasonsTopFlight != 0 {
		t.Fatalf("tier-3 season must not count as top flight")
	}
	if c.SeasonsTopFlightAdj != 1 {
		t.Fatalf("tier-3 season counts toward the adjacent counter")
	}
}

func TestApplyDelta_PromotionAndRelegationCounters(t *testing.T) {
	t.Parallel()

	c := Club{ID: "c-1"}
	c = ApplyDelta(c, Delta{Year: "1990", Tier: 2, Position: 4, Status: season.StatusPlayoffWinner})
	c = ApplyDelta(c, Delta{Year: "1991", Tier: 1, Position: 17, Status: season.StatusRelegated})
	c = ApplyDelta(c, Delta{Year: "1992", Tier: 2, Position: 5, Status: season.StatusPlayoff})

	if c.Promotions != 1 {
		t.Fatalf("playoff winner must count as one promotion, got %d", c.Promotions)
	}
	if c.Relegations != 1 {
		t.Fatalf("expected one relegation, got %d", c.Relegations)
	}
}

func TestApplyDelta_BestFinishIsTierAware(t *testing.T) {
	t.Parallel()

	c := Club{ID: "c-1"}
	c = ApplyDelta(c, Delta{Year: "1990", Tier: 1, Position: 2})
	if c.BestFinishPosition != 2 || c.BestFinishTier != 1 {
		t.Fatalf("expected best finish (2, tier 1), got (%d, tier %d)", c.BestFinishPosition, c.BestFinishTier)
	}

	// Winning a lower division is never better than a top-flight finish.
	c = ApplyDelta(c, Delta{Year: "1993", Tier: 5, Position: 1, Status: season.StatusChampion})
	if c.BestFinishPosition != 2 || c.BestFinishTier != 1 {
		t.Fatalf("tier-5 win overwrote top-flight best finish: (%d, tier %d)",
			c.BestFinishPosition, c.BestFinishTier)
	}

	// A better position at the same tier wins.
	c = ApplyDelta(c, Delta{Year: "1994", Tier: 1, Position: 1, Status: season.StatusChampion})
	if c.BestFinishPosition != 1 || c.BestFinishTier != 1 || c.BestFinishYear != "1994" {
		t.Fatalf("expected best finish (1, tier 1, 1994), got (%d, tier %d, %s)",
			c.BestFinishPosition, c.BestFinishTier, c.BestFinishYear)
	}
}

func TestApplyDelta_CurrentLeagueFollowsLatestYear(t *testing.T) {
	t.Parallel()

	c := Club{ID: "c-1"}
	c = ApplyDelta(c, Delta{Year: "1993-94", LeagueID: "lg-old", Tier: 1, Position: 5})
	c = ApplyDelta(c, Delta{Year: "1990", LeagueID: "lg-older", Tier: 1, Position: 3})

	if c.CurrentLeagueID != "lg-old" || c.LastSeasonYear != "1993-94" {
		t.Fatalf("older season moved the current-league pointer: league=%q year=%q",
			c.CurrentLeagueID, c.LastSeasonYear)
	}
}

func TestNewFromDelta_SeedsRecord(t *testing.T) {
	t.Parallel()

	c := NewFromDelta("c-9", "  Spartak  ", "n-1", Delta{Year: "1988", Tier: 2, Position: 7, Won: 10})
	if c.ID != "c-9" || c.Name != "Spartak" || c.NationID != "n-1" {
		t.Fatalf("unexpected identity: %+v", c)
	}
	if c.SeasonsPlayed != 1 || c.TotalWins != 10 {
		t.Fatalf("first season not applied: played=%d wins=%d", c.SeasonsPlayed, c.TotalWins)
	}
}

func TestAppendYear(t *testing.T) {
	t.Parallel()

	if got := AppendYear("", "1990"); got != "1990" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := AppendYear("1990", "1995"); got != "1990, 1995" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := AppendYear("1990", "  "); got != "1990" {
		t.Fatalf("blank year must be a no-op, got %q", got)
	}
}
