package club

import (
	"fmt"
	"strings"
)

// maxLineageLinks caps former-name and predecessor relations per club.
const maxLineageLinks = 2

// Club is a football club's cumulative career record. Counters are only
// ever advanced through ApplyDelta so that every ingested season
// contributes exactly once.
type Club struct {
	ID       string
	Name     string
	NationID string

	Region     string
	District   string
	Settlement string

	CurrentLeagueID string
	LastSeasonYear  string

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

	// StabilityIndex is a derived 0..1 measure of how settled the club
	// has been across its recent seasons. Refreshed out-of-band after
	// ingestion, never edited directly.
	StabilityIndex float64

	// Best finish ever. BestFinishTier == 0 means no finish recorded yet
	// and compares worse than any real tier.
	BestFinishPosition int
	BestFinishTier     int
	BestFinishYear     string

	// Lineage links. A club either carries former names or is one,
	// never both.
	PredecessorIDs []string
	FormerNameIDs  []string
	SuccessorID    string
	CurrentNameID  string
}

func (c Club) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("club name is required")
	}
	if strings.TrimSpace(c.NationID) == "" {
		return fmt.Errorf("club nation id is required")
	}
	if len(c.PredecessorIDs) > maxLineageLinks {
		return fmt.Errorf("club cannot link more than %d predecessors", maxLineageLinks)
	}
	if len(c.FormerNameIDs) > maxLineageLinks {
		return fmt.Errorf("club cannot link more than %d former names", maxLineageLinks)
	}
	if len(c.FormerNameIDs) > 0 && c.CurrentNameID != "" {
		return fmt.Errorf("club cannot both carry former names and be one")
	}
	return nil
}

// HasBestFinish reports whether any finish has been recorded.
func (c Club) HasBestFinish() bool {
	return c.BestFinishTier > 0
}

// NormalizeName is the case-insensitive key used to resolve club names
// within one nation.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
