package memory

import (
	"github.com/footyrecords/club-history/internal/domain/league"
	"github.com/footyrecords/club-history/internal/domain/nation"
)

const (
	NationIDIndonesia = "idn"
	NationIDEngland   = "eng"

	LeagueIDLiga1         = "idn-liga-1"
	LeagueIDLiga2         = "idn-liga-2"
	LeagueIDPremierLeague = "eng-premier-league"
	LeagueIDChampionship  = "eng-championship"
)

func SeedNations() []nation.Nation {
	return []nation.Nation{
		{
			ID:              NationIDIndonesia,
			Name:            "Indonesia",
			Code:            "IDN",
			Membership:      nation.MembershipFull,
			CoefficientRank: 28,
			Population:      278_000_000,
			AreaKM2:         1_904_569,
		},
		{
			ID:              NationIDEngland,
			Name:            "England",
			Code:            "ENG",
			Membership:      nation.MembershipFull,
			CoefficientRank: 1,
			Population:      56_500_000,
			AreaKM2:         130_279,
		},
	}
}

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:              LeagueIDLiga1,
			NationID:        NationIDIndonesia,
			Name:            "Liga 1",
			Tier:            1,
			PromotionSpots:  0,
			RelegationSpots: 3,
		},
		{
			ID:              LeagueIDLiga2,
			NationID:        NationIDIndonesia,
			Name:            "Liga 2",
			Tier:            2,
			PromotionSpots:  2,
			RelegationSpots: 4,
			PlayoffStart:    3,
			PlayoffEnd:      6,
		},
		{
			ID:              LeagueIDPremierLeague,
			NationID:        NationIDEngland,
			Name:            "Premier League",
			Tier:            1,
			PromotionSpots:  0,
			RelegationSpots: 3,
		},
		{
			ID:              LeagueIDChampionship,
			NationID:        NationIDEngland,
			Name:            "Championship",
			Tier:            2,
			PromotionSpots:  2,
			RelegationSpots: 3,
			PlayoffStart:    3,
			PlayoffEnd:      6,
		},
	}
}
