package club

import (
	"sort"
	"strings"
)

// Career is the lineage-merged statistics view of a club: the current
// record plus every former-name record summed into one career.
// Predecessor clubs are different legal entities; their history is shown
// on timelines but never absorbed into these totals.
type Career struct {
	ClubID      string
	Name        string
	FormerNames []string

	LeagueTitles        int
	TitleYears          string
	LowerTierTitles     int
	LowerTierTitleYears string

	DomesticCupTitles     int
	DomesticCupRunnerUps  int
	DomesticCupTitleYears string
	DomesticCupBestFinish string

	ContinentalTopTitles      int
	ContinentalTopRunnerUps   int
	ContinentalTopAppearances int
	ContinentalTopTitleYears  string

	ContinentalSecondTitles      int
	ContinentalSecondRunnerUps   int
	ContinentalSecondAppearances int
	ContinentalSecondTitleYears  string

	ContinentalBestFinish string

	SeasonsPlayed       int
	TotalWins           int
	TotalDraws          int
	TotalLosses         int
	TotalGoalsScored    int
	TotalGoalsConceded  int
	Promotions          int
	Relegations         int
	SeasonsTopFlight    int
	SeasonsTopFlightAdj int

	BestFinishPosition int
	BestFinishTier     int
	BestFinishYear     string
}

// MergeCareer folds zero or more former-name records into the current
// club's career. Missing lineage references arrive here already dropped,
// so every element of formers is a real record.
func MergeCareer(current Club, formers []Club) Career {
	career := Career{ClubID: current.ID, Name: current.Name}

	contributors := make([]Club, 0, 1+len(formers))
	contributors = append(contributors, current)
	for _, former := range formers {
		career.FormerNames = append(career.FormerNames, former.Name)
		contributors = append(contributors, former)
	}

	for _, c := range contributors {
		career.LeagueTitles += c.LeagueTitles
		career.LowerTierTitles += c.LowerTierTitles
		career.DomesticCupTitles += c.DomesticCupTitles
		career.DomesticCupRunnerUps += c.DomesticCupRunnerUps
		career.ContinentalTopTitles += c.ContinentalTopTitles
		career.ContinentalTopRunnerUps += c.ContinentalTopRunnerUps
		career.ContinentalTopAppearances += c.ContinentalTopAppearances
		career.ContinentalSecondTitles += c.ContinentalSecondTitles
		career.ContinentalSecondRunnerUps += c.ContinentalSecondRunnerUps
		career.ContinentalSecondAppearances += c.ContinentalSecondAppearances
		career.SeasonsPlayed += c.SeasonsPlayed
		career.TotalWins += c.TotalWins
		career.TotalDraws += c.TotalDraws
		career.TotalLosses += c.TotalLosses
		career.TotalGoalsScored += c.TotalGoalsScored
		career.TotalGoalsConceded += c.TotalGoalsConceded
		career.Promotions += c.Promotions
		career.Relegations += c.Relegations
		career.SeasonsTopFlight += c.SeasonsTopFlight
		career.SeasonsTopFlightAdj += c.SeasonsTopFlightAdj

		// Best finish across the lineage uses the same tier-aware rule as
		// season accumulation so both call sites agree.
		if c.HasBestFinish() && betterFinish(c.BestFinishPosition, c.BestFinishTier, Club{
			BestFinishPosition: career.BestFinishPosition,
			BestFinishTier:     career.BestFinishTier,
		}) {
			career.BestFinishPosition = c.BestFinishPosition
			career.BestFinishTier = c.BestFinishTier
			career.BestFinishYear = c.BestFinishYear
		}
	}

	career.TitleYears = MergeYears(collect(contributors, func(c Club) string { return c.TitleYears }))
	career.LowerTierTitleYears = MergeYears(collect(contributors, func(c Club) string { return c.LowerTierTitleYears }))
	career.DomesticCupTitleYears = MergeYears(collect(contributors, func(c Club) string { return c.DomesticCupTitleYears }))
	career.ContinentalTopTitleYears = MergeYears(collect(contributors, func(c Club) string { return c.ContinentalTopTitleYears }))
	career.ContinentalSecondTitleYears = MergeYears(collect(contributors, func(c Club) string { return c.ContinentalSecondTitleYears }))

	career.DomesticCupBestFinish = firstNonEmpty(collect(contributors, func(c Club) string { return c.DomesticCupBestFinish }))
	career.ContinentalBestFinish = firstNonEmpty(collect(contributors, func(c Club) string { return c.ContinentalBestFinish }))

	return career
}

// MergeYears merges comma-joined year histories into one deduplicated,
// ascending list. An empty result stays empty rather than becoming ", ".
func MergeYears(histories []string) string {
	seen := make(map[string]struct{})
	var years []string
	for _, history := range histories {
		for _, year := range strings.Split(history, ",") {
			year = strings.TrimSpace(year)
			if year == "" {
				continue
			}
			if _, ok := seen[year]; ok {
				continue
			}
			seen[year] = struct{}{}
			years = append(years, year)
		}
	}
	if len(years) == 0 {
		return ""
	}
	sort.Strings(years)
	return strings.Join(years, ", ")
}

// firstNonEmpty is the left-to-right fallback used for free-text finish
// labels; textual finishes are never ranked against each other.
func firstNonEmpty(values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func collect(clubs []Club, pick func(Club) string) []string {
	out := make([]string, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, pick(c))
	}
	return out
}
