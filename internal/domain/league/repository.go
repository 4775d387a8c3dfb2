package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	ListByNation(ctx context.Context, nationID string) ([]League, error)
}
