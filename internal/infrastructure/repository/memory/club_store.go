package memory

import (
	"context"
	"fmt"

	"github.com/footyrecords/club-history/internal/domain/club"
)

// ClubStore is the club-typed view over the archive.
type ClubStore struct {
	archive *Archive
}

func (a *Archive) Clubs() *ClubStore {
	return &ClubStore{archive: a}
}

func (s *ClubStore) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	c, ok := s.archive.clubs[clubID]
	if !ok {
		return club.Club{}, false, nil
	}
	return c, true, nil
}

func (s *ClubStore) ListByNation(_ context.Context, nationID string) ([]club.Club, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	var out []club.Club
	for _, id := range s.archive.order {
		if c := s.archive.clubs[id]; c.NationID == nationID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *ClubStore) ListAll(_ context.Context) ([]club.Club, error) {
	s.archive.mu.RLock()
	defer s.archive.mu.RUnlock()

	out := make([]club.Club, 0, len(s.archive.order))
	for _, id := range s.archive.order {
		out = append(out, s.archive.clubs[id])
	}
	return out, nil
}

func (s *ClubStore) UpdateStability(_ context.Context, clubID string, index float64) error {
	s.archive.mu.Lock()
	defer s.archive.mu.Unlock()

	c, ok := s.archive.clubs[clubID]
	if !ok {
		return fmt.Errorf("club %s not found", clubID)
	}
	c.StabilityIndex = index
	s.archive.clubs[clubID] = c
	return nil
}
