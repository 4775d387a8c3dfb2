package season

// Status labels a club's finish within a season table.
type Status string

const (
	StatusChampion  Status = "champion"
	StatusPromoted  Status = "promoted"
	StatusPlayoff   Status = "playoff"
	StatusRelegated Status = "relegated"
	StatusNone      Status = "none"

	// StatusPlayoffWinner is set manually by the submitter, never derived
	// from the position. It counts as a promotion downstream.
	StatusPlayoffWinner Status = "playoff_winner"
)

// AllStatuses enumerates every accepted status label.
var AllStatuses = map[Status]struct{}{
	StatusChampion:      {},
	StatusPromoted:      {},
	StatusPlayoff:       {},
	StatusRelegated:     {},
	StatusNone:          {},
	StatusPlayoffWinner: {},
}

// Spots carries the positional configuration of one division table.
type Spots struct {
	TeamCount       int
	PromotionSpots  int
	RelegationSpots int
	PlayoffStart    int
	PlayoffEnd      int
}

// Classify maps a 1-based table position to a finish status. Rules are
// checked in precedence order and the first match wins: position 1 is
// always the champion even when it also sits inside the promotion spots.
func Classify(position int, spots Spots) Status {
	switch {
	case position == 1:
		return StatusChampion
	case position <= spots.PromotionSpots:
		return StatusPromoted
	case spots.PlayoffStart > 0 && spots.PlayoffEnd > 0 &&
		position >= spots.PlayoffStart && position <= spots.PlayoffEnd:
		return StatusPlayoff
	case position > spots.TeamCount-spots.RelegationSpots:
		return StatusRelegated
	default:
		return StatusNone
	}
}

// HighlightColor resolves the row highlight for a status from a
// caller-supplied palette. Unknown statuses get no highlight.
func HighlightColor(status Status, palette map[Status]string) string {
	return palette[status]
}

// CountsAsPromotion reports whether a status adds to the promotion
// counter. Manual playoff winners are treated exactly like promoted rows.
func (s Status) CountsAsPromotion() bool {
	return s == StatusPromoted || s == StatusPlayoffWinner
}

func (s Status) CountsAsRelegation() bool {
	return s == StatusRelegated
}
