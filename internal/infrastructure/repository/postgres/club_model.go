package postgres

import (
	"github.com/lib/pq"

	"github.com/footyrecords/club-history/internal/domain/club"
)

type clubModel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	NationID string `db:"nation_id"`

	Region     string `db:"region"`
	District   string `db:"district"`
	Settlement string `db:"settlement"`

	CurrentLeagueID string `db:"current_league_id"`
	LastSeasonYear  string `db:"last_season_year"`

	LeagueTitles        int    `db:"league_titles"`
	TitleYears          string `db:"title_years"`
	LowerTierTitles     int    `db:"lower_tier_titles"`
	LowerTierTitleYears string `db:"lower_tier_title_years"`

	DomesticCupTitles     int    `db:"domestic_cup_titles"`
	DomesticCupRunnerUps  int    `db:"domestic_cup_runner_ups"`
	DomesticCupTitleYears string `db:"domestic_cup_title_years"`
	DomesticCupBestFinish string `db:"domestic_cup_best_finish"`

	ContinentalTopTitles      int    `db:"continental_top_titles"`
	ContinentalTopRunnerUps   int    `db:"continental_top_runner_ups"`
	ContinentalTopAppearances int    `db:"continental_top_appearances"`
	ContinentalTopTitleYears  string `db:"continental_top_title_years"`

	ContinentalSecondTitles      int    `db:"continental_second_titles"`
	ContinentalSecondRunnerUps   int    `db:"continental_second_runner_ups"`
	ContinentalSecondAppearances int    `db:"continental_second_appearances"`
	ContinentalSecondTitleYears  string `db:"continental_second_title_years"`

	ContinentalBestFinish string `db:"continental_best_finish"`

	SeasonsPlayed       int `db:"seasons_played"`
	TotalWins           int `db:"total_wins"`
	TotalDraws          int `db:"total_draws"`
	TotalLosses         int `db:"total_losses"`
	TotalGoalsScored    int `db:"total_goals_scored"`
	TotalGoalsConceded  int `db:"total_goals_conceded"`
	Promotions          int `db:"promotions"`
	Relegations         int `db:"relegations"`
	SeasonsTopFlight    int `db:"seasons_top_flight"`
	SeasonsTopFlightAdj int `db:"seasons_top_flight_adj"`

	StabilityIndex float64 `db:"stability_index"`

	BestFinishPosition int    `db:"best_finish_position"`
	BestFinishTier     int    `db:"best_finish_tier"`
	BestFinishYear     string `db:"best_finish_year"`

	PredecessorIDs pq.StringArray `db:"predecessor_ids"`
	FormerNameIDs  pq.StringArray `db:"former_name_ids"`
	SuccessorID    string         `db:"successor_id"`
	CurrentNameID  string         `db:"current_name_id"`
}

func toClubModel(c club.Club) clubModel {
	return clubModel{
		ID:                           c.ID,
		Name:                         c.Name,
		NationID:                     c.NationID,
		Region:                       c.Region,
		District:                     c.District,
		Settlement:                   c.Settlement,
		CurrentLeagueID:              c.CurrentLeagueID,
		LastSeasonYear:               c.LastSeasonYear,
		LeagueTitles:                 c.LeagueTitles,
		TitleYears:                   c.TitleYears,
		LowerTierTitles:              c.LowerTierTitles,
		LowerTierTitleYears:          c.LowerTierTitleYears,
		DomesticCupTitles:            c.DomesticCupTitles,
		DomesticCupRunnerUps:         c.DomesticCupRunnerUps,
		DomesticCupTitleYears:        c.DomesticCupTitleYears,
		DomesticCupBestFinish:        c.DomesticCupBestFinish,
		ContinentalTopTitles:         c.ContinentalTopTitles,
		ContinentalTopRunnerUps:      c.ContinentalTopRunnerUps,
		ContinentalTopAppearances:    c.ContinentalTopAppearances,
		ContinentalTopTitleYears:     c.ContinentalTopTitleYears,
		ContinentalSecondTitles:      c.ContinentalSecondTitles,
		ContinentalSecondRunnerUps:   c.ContinentalSecondRunnerUps,
		ContinentalSecondAppearances: c.ContinentalSecondAppearances,
		ContinentalSecondTitleYears:  c.ContinentalSecondTitleYears,
		ContinentalBestFinish:        c.ContinentalBestFinish,
		SeasonsPlayed:                c.SeasonsPlayed,
		TotalWins:                    c.TotalWins,
		TotalDraws:                   c.TotalDraws,
		TotalLosses:                  c.TotalLosses,
		TotalGoalsScored:             c.TotalGoalsScored,
		TotalGoalsConceded:           c.TotalGoalsConceded,
		Promotions:                   c.Promotions,
		Relegations:                  c.Relegations,
		SeasonsTopFlight:             c.SeasonsTopFlight,
		SeasonsTopFlightAdj:          c.SeasonsTopFlightAdj,
		StabilityIndex:               c.StabilityIndex,
		BestFinishPosition:           c.BestFinishPosition,
		BestFinishTier:               c.BestFinishTier,
		BestFinishYear:               c.BestFinishYear,
		PredecessorIDs:               pq.StringArray(c.PredecessorIDs),
		FormerNameIDs:                pq.StringArray(c.FormerNameIDs),
		SuccessorID:                  c.SuccessorID,
		CurrentNameID:                c.CurrentNameID,
	}
}

func (m clubModel) toDomain() club.Club {
	return club.Club{
		ID:                           m.ID,
		Name:                         m.Name,
		NationID:                     m.NationID,
		Region:                       m.Region,
		District:                     m.District,
		Settlement:                   m.Settlement,
		CurrentLeagueID:              m.CurrentLeagueID,
		LastSeasonYear:               m.LastSeasonYear,
		LeagueTitles:                 m.LeagueTitles,
		TitleYears:                   m.TitleYears,
		LowerTierTitles:              m.LowerTierTitles,
		LowerTierTitleYears:          m.LowerTierTitleYears,
		DomesticCupTitles:            m.DomesticCupTitles,
		DomesticCupRunnerUps:         m.DomesticCupRunnerUps,
		DomesticCupTitleYears:        m.DomesticCupTitleYears,
		DomesticCupBestFinish:        m.DomesticCupBestFinish,
		ContinentalTopTitles:         m.ContinentalTopTitles,
		ContinentalTopRunnerUps:      m.ContinentalTopRunnerUps,
		ContinentalTopAppearances:    m.ContinentalTopAppearances,
		ContinentalTopTitleYears:     m.ContinentalTopTitleYears,
		ContinentalSecondTitles:      m.ContinentalSecondTitles,
		ContinentalSecondRunnerUps:   m.ContinentalSecondRunnerUps,
		ContinentalSecondAppearances: m.ContinentalSecondAppearances,
		ContinentalSecondTitleYears:  m.ContinentalSecondTitleYears,
		ContinentalBestFinish:        m.ContinentalBestFinish,
		SeasonsPlayed:                m.SeasonsPlayed,
		TotalWins:                    m.TotalWins,
		TotalDraws:                   m.TotalDraws,
		TotalLosses:                  m.TotalLosses,
		TotalGoalsScored:             m.TotalGoalsScored,
		TotalGoalsConceded:           m.TotalGoalsConceded,
		Promotions:                   m.Promotions,
		Relegations:                  m.Relegations,
		SeasonsTopFlight:             m.SeasonsTopFlight,
		SeasonsTopFlightAdj:          m.SeasonsTopFlightAdj,
		StabilityIndex:               m.StabilityIndex,
		BestFinishPosition:           m.BestFinishPosition,
		BestFinishTier:               m.BestFinishTier,
		BestFinishYear:               m.BestFinishYear,
		PredecessorIDs:               []string(m.PredecessorIDs),
		FormerNameIDs:                []string(m.FormerNameIDs),
		SuccessorID:                  m.SuccessorID,
		CurrentNameID:                m.CurrentNameID,
	}
}
