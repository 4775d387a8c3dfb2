package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, seasonID string) (Season, bool, error)
	FindByDivision(ctx context.Context, leagueID, year, divisionName string) (Season, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Season, error)
	ListByNationAndTier(ctx context.Context, nationID string, tier int) ([]Season, error)
}

// EntryRepository describes table-entry reads from use cases.
type EntryRepository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]TableEntry, error)
	ListByClub(ctx context.Context, clubID string) ([]TableEntry, error)
	ListByClubs(ctx context.Context, clubIDs []string) ([]TableEntry, error)
}
