package postgres

import (
	"context"
	"fmt"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo lee el maestro de materiales. Se consulta una vez al
// arranque para armar el catálogo en memoria; si la tabla está vacía la
// app cae al catálogo por defecto.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// ListAll devuelve todos los materiales ordenados por id.
func (r *MaterialRepo) ListAll(ctx context.Context) ([]*entity.Material, error) {
	query := `
		SELECT id, name, unit, lead_time_days
		FROM materials ORDER BY id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var materials []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.LeadTimeDays); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, &m)
	}
	return materials, rows.Err()
}
