package nation

import "fmt"

// Membership is a nation's standing within the continental federation.
type Membership string

const (
	MembershipFull      Membership = "full"
	MembershipAssociate Membership = "associate"
	MembershipNone      Membership = "none"
)

// Nation is one national association.
type Nation struct {
	ID         string
	Name       string
	Code       string
	Membership Membership

	// CoefficientRank is supplied externally. Zero means no rank is
	// published, which sorts behind every ranked nation.
	CoefficientRank int

	// Geography feeds the population estimator.
	Population int64
	AreaKM2    int64
}

func (n Nation) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("nation id is required")
	}
	if n.Name == "" {
		return fmt.Errorf("nation name is required")
	}
	switch n.Membership {
	case MembershipFull, MembershipAssociate, MembershipNone:
	default:
		return fmt.Errorf("unknown membership %q", n.Membership)
	}
	return nil
}

// HasCoefficientRank reports whether a coefficient rank is published.
func (n Nation) HasCoefficientRank() bool {
	return n.CoefficientRank > 0
}
