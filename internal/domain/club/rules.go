package club

import (
	"strings"

	"github.com/footyrecords/club-history/internal/domain/season"
)

// topFlightAdjacentMaxTier bounds the secondary tier counter: seasons at
// this tier or above count toward SeasonsTopFlightAdj.
const topFlightAdjacentMaxTier = 4

// Delta is the statistical contribution of one season table row to one
// club's career record.
type Delta struct {
	ClubName     string
	Year         string
	LeagueID     string
	Tier         int
	Position     int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Status       season.Status
}

func (d Delta) IsTopTier() bool           { return d.Tier == 1 }
func (d Delta) IsTopFlightAdjacent() bool { return d.Tier <= topFlightAdjacentMaxTier }
func (d Delta) IsChampion() bool          { return d.Status == season.StatusChampion }
func (d Delta) IsPromoted() bool          { return d.Status.CountsAsPromotion() }
func (d Delta) IsRelegated() bool         { return d.Status.CountsAsRelegation() }

// ApplyDelta folds one season row into a career record and returns the
// updated record. Calling it more than once per (club, season) pair
// double-counts; the ingestion pipeline guards that boundary.
func ApplyDelta(c Club, d Delta) Club {
	if d.IsChampion() {
		if d.IsTopTier() {
			c.LeagueTitles++
			c.TitleYears = AppendYear(c.TitleYears, d.Year)
		} else {
			c.LowerTierTitles++
			c.LowerTierTitleYears = AppendYear(c.LowerTierTitleYears, d.Year)
		}
	}

	c.SeasonsPlayed++
	c.TotalWins += d.Won
	c.TotalDraws += d.Drawn
	c.TotalLosses += d.Lost
	c.TotalGoalsScored += d.GoalsFor
	c.TotalGoalsConceded += d.GoalsAgainst
	if d.IsPromoted() {
		c.Promotions++
	}
	if d.IsRelegated() {
		c.Relegations++
	}
	if d.IsTopTier() {
		c.SeasonsTopFlight++
	}
	if d.IsTopFlightAdjacent() {
		c.SeasonsTopFlightAdj++
	}

	if betterFinish(d.Position, d.Tier, c) {
		c.BestFinishPosition = d.Position
		c.BestFinishTier = d.Tier
		c.BestFinishYear = d.Year
	}

	// The current-league pointer follows the latest season under plain
	// string ordering; season.ValidYear keeps the format consistent.
	if c.LastSeasonYear == "" || d.Year > c.LastSeasonYear {
		c.LastSeasonYear = d.Year
		if d.LeagueID != "" {
			c.CurrentLeagueID = d.LeagueID
		}
	}

	return c
}

// NewFromDelta seeds a brand-new club record from its first season row.
func NewFromDelta(id, name, nationID string, d Delta) Club {
	seeded := ApplyDelta(Club{ID: id, Name: strings.TrimSpace(name), NationID: nationID}, d)
	return seeded
}

// betterFinish implements the tier-aware tie-break: a strictly better
// tier always wins regardless of position; within the same tier a lower
// position wins. A worse tier never wins, not even with position 1.
func betterFinish(newPosition, newTier int, c Club) bool {
	if newPosition <= 0 || newTier <= 0 {
		return false
	}
	if !c.HasBestFinish() {
		return true
	}
	if newTier < c.BestFinishTier {
		return true
	}
	return newTier == c.BestFinishTier && newPosition < c.BestFinishPosition
}

// AppendYear appends one year to a comma-joined history string,
// preserving arrival order and keeping repeats as submitted.
func AppendYear(years, year string) string {
	year = strings.TrimSpace(year)
	if year == "" {
		return years
	}
	if years == "" {
		return year
	}
	return years + ", " + year
}
