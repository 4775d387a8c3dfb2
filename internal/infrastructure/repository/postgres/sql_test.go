package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/footyrecords/club-history/internal/domain/club"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches no rows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get season: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation clubs does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert season: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		err := fmt.Errorf("insert season: %w", &pq.Error{Code: "23503"})
		if isUniqueViolation(err) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("connection reset")) {
			t.Fatalf("expected false for non-pq error")
		}
	})
}

func TestClubModel_LineageArrays(t *testing.T) {
	t.Run("lineage links survive the mapping", func(t *testing.T) {
		in := club.Club{
			ID:             "c-1",
			Name:           "Persija",
			NationID:       "idn",
			PredecessorIDs: []string{"c-old-1", "c-old-2"},
			FormerNameIDs:  []string{"c-former"},
		}
		out := toClubModel(in).toDomain()
		if len(out.PredecessorIDs) != 2 || out.PredecessorIDs[0] != "c-old-1" {
			t.Fatalf("unexpected predecessor ids: %+v", out.PredecessorIDs)
		}
		if len(out.FormerNameIDs) != 1 || out.FormerNameIDs[0] != "c-former" {
			t.Fatalf("unexpected former name ids: %+v", out.FormerNameIDs)
		}
	})

	t.Run("unlinked club keeps empty lineage", func(t *testing.T) {
		out := toClubModel(club.Club{ID: "c-1", Name: "Persija", NationID: "idn"}).toDomain()
		if len(out.PredecessorIDs) != 0 || len(out.FormerNameIDs) != 0 {
			t.Fatalf("expected empty lineage, got %+v / %+v", out.PredecessorIDs, out.FormerNameIDs)
		}
	})
}
