package season

import (
	"fmt"
	"regexp"
	"strings"
)

// yearPattern is the only year format the archive accepts. Current-league
// pointers and season histories are ordered by plain string comparison,
// which is only sound while every stored year matches this shape.
var yearPattern = regexp.MustCompile(`^\d{4}(-\d{2})?$`)

// Season is one competition-year instance of a league division. Once
// ingested it is an immutable historical fact.
type Season struct {
	ID              string
	LeagueID        string
	NationID        string
	Year            string
	Tier            int
	DivisionName    string
	DivisionGroup   string
	PromotionSpots  int
	RelegationSpots int
	PlayoffStart    int
	PlayoffEnd      int

	// Derived summary, filled at ingestion time.
	ChampionName   string
	PromotedNames  []string
	RelegatedNames []string
}

// TableEntry is one club's row within a season.
type TableEntry struct {
	ID             string
	SeasonID       string
	ClubID         string
	ClubName       string
	Year           string
	Tier           int
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Status         Status
}

// Normalize recomputes the derived fields from their inputs. Played and
// goal difference are never edited independently.
func (e TableEntry) Normalize() TableEntry {
	e.ClubName = strings.TrimSpace(e.ClubName)
	e.Played = e.Won + e.Drawn + e.Lost
	e.GoalDifference = e.GoalsFor - e.GoalsAgainst
	return e
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.LeagueID) == "" {
		return fmt.Errorf("season league id is required")
	}
	if !ValidYear(s.Year) {
		return fmt.Errorf("season year %q must match YYYY or YYYY-YY", s.Year)
	}
	if s.Tier < 1 {
		return fmt.Errorf("season tier must be 1 or lower-division")
	}
	if s.PromotionSpots < 0 || s.RelegationSpots < 0 {
		return fmt.Errorf("promotion/relegation spots cannot be negative")
	}
	if (s.PlayoffStart == 0) != (s.PlayoffEnd == 0) {
		return fmt.Errorf("playoff start and end must both be set or both be empty")
	}
	if s.PlayoffStart > 0 && s.PlayoffEnd < s.PlayoffStart {
		return fmt.Errorf("playoff end cannot precede playoff start")
	}
	return nil
}

// ValidYear reports whether a year string uses the archive's fixed format.
func ValidYear(year string) bool {
	return yearPattern.MatchString(strings.TrimSpace(year))
}
