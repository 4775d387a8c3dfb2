package club

import "context"

// Repository describes club persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, clubID string) (Club, bool, error)
	ListByNation(ctx context.Context, nationID string) ([]Club, error)
	ListAll(ctx context.Context) ([]Club, error)
}
