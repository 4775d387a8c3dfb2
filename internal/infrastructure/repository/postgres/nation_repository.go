package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footyrecords/club-history/internal/domain/nation"
)

const nationColumns = `id, name, code, membership, coefficient_rank, population, area_km2`

type nationModel struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Code            string `db:"code"`
	Membership      string `db:"membership"`
	CoefficientRank int    `db:"coefficient_rank"`
	Population      int64  `db:"population"`
	AreaKM2         int64  `db:"area_km2"`
}

func (m nationModel) toDomain() nation.Nation {
	return nation.Nation{
		ID:              m.ID,
		Name:            m.Name,
		Code:            m.Code,
		Membership:      nation.Membership(m.Membership),
		CoefficientRank: m.CoefficientRank,
		Population:      m.Population,
		AreaKM2:         m.AreaKM2,
	}
}

type NationRepository struct {
	db *sqlx.DB
}

func NewNationRepository(db *sqlx.DB) *NationRepository {
	return &NationRepository{db: db}
}

func (r *NationRepository) GetByID(ctx context.Context, nationID string) (nation.Nation, bool, error) {
	var row nationModel
	query := `SELECT ` + nationColumns + ` FROM nations WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, nationID); err != nil {
		if isNotFound(err) {
			return nation.Nation{}, false, nil
		}
		return nation.Nation{}, false, fmt.Errorf("get nation by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *NationRepository) List(ctx context.Context) ([]nation.Nation, error) {
	var rows []nationModel
	query := `SELECT ` + nationColumns + ` FROM nations ORDER BY name ASC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list nations: %w", err)
	}

	out := make([]nation.Nation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
