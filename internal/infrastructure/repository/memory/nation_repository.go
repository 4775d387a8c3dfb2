package memory

import (
	"context"
	"sync"

	"github.com/footyrecords/club-history/internal/domain/nation"
)

type NationRepository struct {
	mu     sync.RWMutex
	items  map[string]nation.Nation
	orders []string
}

func NewNationRepository(nations []nation.Nation) *NationRepository {
	items := make(map[string]nation.Nation, len(nations))
	orders := make([]string, 0, len(nations))

	for _, n := range nations {
		items[n.ID] = n
		orders = append(orders, n.ID)
	}

	return &NationRepository{
		items:  items,
		orders: orders,
	}
}

func (r *NationRepository) GetByID(_ context.Context, nationID string) (nation.Nation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.items[nationID]
	if !ok {
		return nation.Nation{}, false, nil
	}
	return n, true, nil
}

func (r *NationRepository) List(_ context.Context) ([]nation.Nation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]nation.Nation, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}
