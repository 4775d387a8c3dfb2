package postgres

import (
	"github.com/lib/pq"

	"github.com/footyrecords/club-history/internal/domain/season"
)

type seasonModel struct {
	ID              string         `db:"id"`
	LeagueID        string         `db:"league_id"`
	NationID        string         `db:"nation_id"`
	Year            string         `db:"year"`
	Tier            int            `db:"tier"`
	DivisionName    string         `db:"division_name"`
	DivisionGroup   string         `db:"division_group"`
	PromotionSpots  int            `db:"promotion_spots"`
	RelegationSpots int            `db:"relegation_spots"`
	PlayoffStart    int            `db:"playoff_start"`
	PlayoffEnd      int            `db:"playoff_end"`
	ChampionName    string         `db:"champion_name"`
	PromotedNames   pq.StringArray `db:"promoted_names"`
	RelegatedNames  pq.StringArray `db:"relegated_names"`
}

func toSeasonModel(s season.Season) seasonModel {
	return seasonModel{
		ID:              s.ID,
		LeagueID:        s.LeagueID,
		NationID:        s.NationID,
		Year:            s.Year,
		Tier:            s.Tier,
		DivisionName:    s.DivisionName,
		DivisionGroup:   s.DivisionGroup,
		PromotionSpots:  s.PromotionSpots,
		RelegationSpots: s.RelegationSpots,
		PlayoffStart:    s.PlayoffStart,
		PlayoffEnd:      s.PlayoffEnd,
		ChampionName:    s.ChampionName,
		PromotedNames:   pq.StringArray(s.PromotedNames),
		RelegatedNames:  pq.StringArray(s.RelegatedNames),
	}
}

func (m seasonModel) toDomain() season.Season {
	return season.Season{
		ID:              m.ID,
		LeagueID:        m.LeagueID,
		NationID:        m.NationID,
		Year:            m.Year,
		Tier:            m.Tier,
		DivisionName:    m.DivisionName,
		DivisionGroup:   m.DivisionGroup,
		PromotionSpots:  m.PromotionSpots,
		RelegationSpots: m.RelegationSpots,
		PlayoffStart:    m.PlayoffStart,
		PlayoffEnd:      m.PlayoffEnd,
		ChampionName:    m.ChampionName,
		PromotedNames:   []string(m.PromotedNames),
		RelegatedNames:  []string(m.RelegatedNames),
	}
}

type tableEntryModel struct {
	ID             string `db:"id"`
	SeasonID       string `db:"season_id"`
	ClubID         string `db:"club_id"`
	ClubName       string `db:"club_name"`
	Year           string `db:"year"`
	Tier           int    `db:"tier"`
	Position       int    `db:"position"`
	Played         int    `db:"played"`
	Won            int    `db:"won"`
	Drawn          int    `db:"drawn"`
	Lost           int    `db:"lost"`
	GoalsFor       int    `db:"goals_for"`
	GoalsAgainst   int    `db:"goals_against"`
	GoalDifference int    `db:"goal_difference"`
	Points         int    `db:"points"`
	Status         string `db:"status"`
}

func toTableEntryModel(e season.TableEntry) tableEntryModel {
	return tableEntryModel{
		ID:             e.ID,
		SeasonID:       e.SeasonID,
		ClubID:         e.ClubID,
		ClubName:       e.ClubName,
		Year:           e.Year,
		Tier:           e.Tier,
		Position:       e.Position,
		Played:         e.Played,
		Won:            e.Won,
		Drawn:          e.Drawn,
		Lost:           e.Lost,
		GoalsFor:       e.GoalsFor,
		GoalsAgainst:   e.GoalsAgainst,
		GoalDifference: e.GoalDifference,
		Points:         e.Points,
		Status:         string(e.Status),
	}
}

func (m tableEntryModel) toDomain() season.TableEntry {
	return season.TableEntry{
		ID:             m.ID,
		SeasonID:       m.SeasonID,
		ClubID:         m.ClubID,
		ClubName:       m.ClubName,
		Year:           m.Year,
		Tier:           m.Tier,
		Position:       m.Position,
		Played:         m.Played,
		Won:            m.Won,
		Drawn:          m.Drawn,
		Lost:           m.Lost,
		GoalsFor:       m.GoalsFor,
		GoalsAgainst:   m.GoalsAgainst,
		GoalDifference: m.GoalDifference,
		Points:         m.Points,
		Status:         season.Status(m.Status),
	}
}
