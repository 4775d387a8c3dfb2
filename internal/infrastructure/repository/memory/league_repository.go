package memory

import (
	"context"
	"sync"

	"github.com/footyrecords/club-history/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}
	return l, true, nil
}

func (r *LeagueRepository) ListByNation(_ context.Context, nationID string) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []league.League
	for _, id := range r.orders {
		if l := r.items[id]; l.NationID == nationID {
			out = append(out, l)
		}
	}
	return out, nil
}
