package club

import (
	"reflect"
	"testing"
)

func TestMergeCareer_SumsFormerNames(t *testing.T) {
	t.Parallel()

	current := Club{
		ID: "c-1", Name: "FC United",
		LeagueTitles: 2, TitleYears: "1990, 1995",
		SeasonsPlayed: 10, TotalWins: 100,
		Promotions: 1,
	}
	former := Club{
		ID: "c-0", Name: "United Works",
		LeagueTitles: 3, TitleYears: "1960, 1962, 1990",
		SeasonsPlayed: 20, TotalWins: 180,
		Relegations: 2,
	}

	career := MergeCareer(current, []Club{former})

	if career.LeagueTitles != 5 {
		t.Fatalf("expected 2+3=5 league titles, got %d", career.LeagueTitles)
	}
	if career.SeasonsPlayed != 30 || career.TotalWins != 280 {
		t.Fatalf("unexpected totals: played=%d wins=%d", career.SeasonsPlayed, career.TotalWins)
	}
	if career.Promotions != 1 || career.Relegations != 2 {
		t.Fatalf("unexpected movement counters: promotions=%d relegations=%d",
			career.Promotions, career.Relegations)
	}
	if !reflect.DeepEqual(career.FormerNames, []string{"United Works"}) {
		t.Fatalf("unexpected former names: %v", career.FormerNames)
	}
	// 1990 appears in both histories and must be kept once.
	if career.TitleYears != "1960, 1962, 1990, 1995" {
		t.Fatalf("unexpected merged title years: %q", career.TitleYears)
	}
}

func TestMergeCareer_BestFinishAcrossLineage(t *testing.T) {
	t.Parallel()

	current := Club{ID: "c-1", Name: "FC United", BestFinishPosition: 3, BestFinishTier: 2, BestFinishYear: "2001"}
	former := Club{ID: "c-0", Name: "United Works", BestFinishPosition: 6, BestFinishTier: 1, BestFinishYear: "1965"}

	career := MergeCareer(current, []Club{former})

	if career.BestFinishTier != 1 || career.BestFinishPosition != 6 || career.BestFinishYear != "1965" {
		t.Fatalf("expected former's tier-1 finish to win: (%d, tier %d, %s)",
			career.BestFinishPosition, career.BestFinishTier, career.BestFinishYear)
	}
}

func TestMergeCareer_NoFormers(t *testing.T) {
	t.Parallel()

	current := Club{ID: "c-1", Name: "Solo", LeagueTitles: 1, TitleYears: "2010"}
	career := MergeCareer(current, nil)

	if career.LeagueTitles != 1 || career.TitleYears != "2010" {
		t.Fatalf("unexpected career: %+v", career)
	}
	if len(career.FormerNames) != 0 {
		t.Fatalf("expected no former names, got %v", career.FormerNames)
	}
}

func TestMergeYears(t *testing.T) {
	t.Parallel()

	t.Run("dedupes and sorts", func(t *testing.T) {
		t.Parallel()
		got := MergeYears([]string{"1990", "1990, 1995", "1987"})
		if got != "1987, 1990, 1995" {
			t.Fatalf("unexpected merge: %q", got)
		}
	})

	t.Run("empty stays empty", func(t *testing.T) {
		t.Parallel()
		if got := MergeYears([]string{"", "  "}); got != "" {
			t.Fatalf("expected empty result, got %q", got)
		}
	})

	t.Run("split seasons keep string order", func(t *testing.T) {
		t.Parallel()
		got := MergeYears([]string{"1999-00, 1999"})
		if got != "1999, 1999-00" {
			t.Fatalf("unexpected merge: %q", got)
		}
	})
}
