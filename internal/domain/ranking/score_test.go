package ranking

import (
	"testing"

	"github.com/footyrecords/club-history/internal/domain/nation"
)

func TestTrophyScore(t *testing.T) {
	t.Parallel()

	// 4 league titles, 2 cups, 1 continental: 4*10 + 2*5 + 1*20.
	if got := TrophyScore(4, 2, 1); got != 70 {
		t.Fatalf("expected trophy score 70, got %d", got)
	}
	if got := TrophyScore(0, 0, 0); got != 0 {
		t.Fatalf("expected zero trophy score, got %d", got)
	}
}

func TestActivityScore(t *testing.T) {
	t.Parallel()

	if got := ActivityScore(12, 7); got != 19 {
		t.Fatalf("expected activity score 19, got %d", got)
	}
}

func TestStrengthScore(t *testing.T) {
	t.Parallel()

	t.Run("full member with strong coefficient", func(t *testing.T) {
		t.Parallel()
		// 15 (full) + 35 (rank 3) + 2*10 (top titles) + 3*3 (tier depth) + 18 teams = 97.
		got := StrengthScore(StrengthInput{
			Membership:         nation.MembershipFull,
			CoefficientRank:    3,
			TopTitleClubs:      2,
			MaxLeagueTier:      3,
			TopFlightTeamCount: 18,
		})
		if got != 97 {
			t.Fatalf("expected strength score 97, got %d", got)
		}
		if band := StrengthBand(got); band != BandElite {
			t.Fatalf("expected band %s, got %s", BandElite, band)
		}
	})

	t.Run("clamped at 100", func(t *testing.T) {
		t.Parallel()
		got := StrengthScore(StrengthInput{
			Membership:         nation.MembershipFull,
			CoefficientRank:    1,
			TopTitleClubs:      10,
			SecondTitleClubs:   10,
			MaxLeagueTier:      10,
			TopFlightTeamCount: 30,
		})
		if got != 100 {
			t.Fatalf("expected clamp at 100, got %d", got)
		}
	})

	t.Run("unranked nation gets no coefficient bonus", func(t *testing.T) {
		t.Parallel()
		got := StrengthScore(StrengthInput{
			Membership:         nation.MembershipAssociate,
			CoefficientRank:    0,
			MaxLeagueTier:      1,
			TopFlightTeamCount: 10,
		})
		// 5 + 0 + 3 + 10.
		if got != 18 {
			t.Fatalf("expected strength score 18, got %d", got)
		}
		if band := StrengthBand(got); band != BandGrowing {
			t.Fatalf("expected band %s, got %s", BandGrowing, band)
		}
	})

	t.Run("top flight count capped at 20", func(t *testing.T) {
		t.Parallel()
		base := StrengthInput{Membership: nation.MembershipNone, TopFlightTeamCount: 20}
		over := base
		over.TopFlightTeamCount = 24
		if StrengthScore(base) != StrengthScore(over) {
			t.Fatalf("team counts above the cap must not add score")
		}
	})
}

func TestStrengthBand_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score int
		want  string
	}{
		{100, BandElite},
		{80, BandElite},
		{79, BandStrong},
		{60, BandStrong},
		{59, BandDeveloping},
		{40, BandDeveloping},
		{39, BandEmerging},
		{20, BandEmerging},
		{19, BandGrowing},
		{0, BandGrowing},
	}
	for _, tc := range cases {
		if got := StrengthBand(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestRecentForm(t *testing.T) {
	t.Parallel()

	t.Run("averages the window", func(t *testing.T) {
		t.Parallel()
		if got := RecentForm([]int{2, 4, 6, 20}, 3); got != 4.0 {
			t.Fatalf("expected form 4.0, got %v", got)
		}
	})

	t.Run("short history shrinks the window", func(t *testing.T) {
		t.Parallel()
		if got := RecentForm([]int{3}, 3); got != 3.0 {
			t.Fatalf("expected form 3.0, got %v", got)
		}
	})

	t.Run("missing positions count as 99", func(t *testing.T) {
		t.Parallel()
		if got := RecentForm([]int{1, 0}, 2); got != 50.0 {
			t.Fatalf("expected form 50.0, got %v", got)
		}
	})

	t.Run("no entries yield zero", func(t *testing.T) {
		t.Parallel()
		if got := RecentForm(nil, 3); got != 0 {
			t.Fatalf("expected zero form, got %v", got)
		}
	})
}
