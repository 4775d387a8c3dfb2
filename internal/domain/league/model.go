package league

import "fmt"

// League is one division of a nation's pyramid. Tier is the league's
// current level; seasons snapshot the tier at ingestion time and remain
// historically correct when a league moves.
type League struct {
	ID              string
	NationID        string
	Name            string
	Tier            int
	PromotionSpots  int
	RelegationSpots int
	PlayoffStart    int
	PlayoffEnd      int
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.NationID == "" {
		return fmt.Errorf("league nation id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Tier < 1 {
		return fmt.Errorf("league tier must be at least 1")
	}
	return nil
}
