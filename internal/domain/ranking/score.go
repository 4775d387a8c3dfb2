package ranking

import "github.com/footyrecords/club-history/internal/domain/nation"

// Trophy weights. These are ranking conveniences, never stored facts.
const (
	weightLeagueTitle      = 10
	weightDomesticCupTitle = 5
	weightContinentalTitle = 20
)

// TrophyScore is the weighted trophy haul used to order locations.
func TrophyScore(leagueTitles, domesticCupTitles, continentalTitles int) int {
	return leagueTitles*weightLeagueTitle +
		domesticCupTitles*weightDomesticCupTitle +
		continentalTitles*weightContinentalTitle
}

// ActivityScore is displayed beside the trophy score but never used as
// a sort key.
func ActivityScore(totalClubs, totalPromotions int) int {
	return totalClubs + totalPromotions
}

// StrengthInput carries everything the nation strength formula consumes.
type StrengthInput struct {
	Membership         nation.Membership
	CoefficientRank    int // 0 = not published
	TopTitleClubs      int // clubs with top continental competition titles
	SecondTitleClubs   int // clubs with second continental competition titles
	MaxLeagueTier      int // pyramid depth proxy
	TopFlightTeamCount int
}

// Strength bands, ordered best to worst.
const (
	BandElite      = "Elite"
	BandStrong     = "Strong"
	BandDeveloping = "Developing"
	BandEmerging   = "Emerging"
	BandGrowing    = "Growing"
)

const topFlightCountCap = 20

// StrengthScore computes the clamped 0..100 nation strength score.
func StrengthScore(in StrengthInput) int {
	score := membershipBonus(in.Membership)
	score += coefficientBonus(in.CoefficientRank)
	score += in.TopTitleClubs*10 + in.SecondTitleClubs*5
	score += in.MaxLeagueTier * 3
	score += min(in.TopFlightTeamCount, topFlightCountCap)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// StrengthBand maps a clamped strength score to its display band.
func StrengthBand(score int) string {
	switch {
	case score >= 80:
		return BandElite
	case score >= 60:
		return BandStrong
	case score >= 40:
		return BandDeveloping
	case score >= 20:
		return BandEmerging
	default:
		return BandGrowing
	}
}

func membershipBonus(m nation.Membership) int {
	switch m {
	case nation.MembershipFull:
		return 15
	case nation.MembershipAssociate:
		return 5
	default:
		return 0
	}
}

func coefficientBonus(rank int) int {
	switch {
	case rank <= 0:
		return 0
	case rank <= 5:
		return 35
	case rank <= 10:
		return 25
	case rank <= 20:
		return 15
	default:
		return 8
	}
}

// missingPositionSentinel stands in for rows without a position so they
// drag the form average toward "worst".
const missingPositionSentinel = 99

// RecentForm averages table positions over the most recent window of
// entries; callers pass entries already sorted by year descending and a
// window of 3 seasons per club. Zero entries yield zero.
func RecentForm(positions []int, window int) float64 {
	if window <= 0 || len(positions) == 0 {
		return 0
	}
	if window > len(positions) {
		window = len(positions)
	}

	total := 0
	for _, position := range positions[:window] {
		if position <= 0 {
			position = missingPositionSentinel
		}
		total += position
	}
	return float64(total) / float64(window)
}
