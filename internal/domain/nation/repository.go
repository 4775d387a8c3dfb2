package nation

import "context"

// Repository describes nation persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, nationID string) (Nation, bool, error)
	List(ctx context.Context) ([]Nation, error)
}
