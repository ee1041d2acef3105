package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del ledger append-only sobre PostgreSQL.
// Dos tablas, una por tipo de evento; solo INSERT y SELECT: las filas
// jamás se actualizan ni se borran. Cada INSERT es atómico, así que una
// lectura concurrente ve el evento completo o no lo ve.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// AppendDelivery persiste una entrega.
func (r *LedgerRepo) AppendDelivery(ctx context.Context, ev *entity.DeliveryEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	query := `
		INSERT INTO delivery_events (id, material_id, project_id, quantity, received_by, notes, event_ts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	notes := (*string)(nil)
	if ev.Notes != "" {
		notes = &ev.Notes
	}
	_, err := r.q.Exec(ctx, query,
		ev.ID, ev.MaterialID, ev.ProjectID, ev.Quantity, ev.ReceivedBy, notes, ev.Timestamp, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append delivery event: %w", err)
	}
	return nil
}

// AppendUsage persiste un consumo.
func (r *LedgerRepo) AppendUsage(ctx context.Context, ev *entity.UsageEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	query := `
		INSERT INTO usage_events (id, material_id, project_id, quantity, logged_by, notes, event_ts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	notes := (*string)(nil)
	if ev.Notes != "" {
		notes = &ev.Notes
	}
	_, err := r.q.Exec(ctx, query,
		ev.ID, ev.MaterialID, ev.ProjectID, ev.Quantity, ev.LoggedBy, notes, ev.Timestamp, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append usage event: %w", err)
	}
	return nil
}

// ListDeliveries lista entregas del proyecto ordenadas por timestamp,
// desempate por orden de inserción. materialID vacío = todos.
func (r *LedgerRepo) ListDeliveries(ctx context.Context, projectID, materialID string) ([]*entity.DeliveryEvent, error) {
	query := `
		SELECT id, material_id, project_id, quantity, received_by, notes, event_ts, created_at
		FROM delivery_events WHERE project_id = $1`
	args := []any{projectID}
	if materialID != "" {
		query += " AND material_id = $2"
		args = append(args, materialID)
	}
	query += " ORDER BY event_ts, created_at, id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list delivery events: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryEvent
	for rows.Next() {
		var ev entity.DeliveryEvent
		var notes *string
		if err := rows.Scan(&ev.ID, &ev.MaterialID, &ev.ProjectID, &ev.Quantity,
			&ev.ReceivedBy, &notes, &ev.Timestamp, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery event: %w", err)
		}
		if notes != nil {
			ev.Notes = *notes
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// ListUsages lista consumos del proyecto con el mismo orden que
// ListDeliveries. materialID vacío = todos.
func (r *LedgerRepo) ListUsages(ctx context.Context, projectID, materialID string) ([]*entity.UsageEvent, error) {
	query := `
		SELECT id, material_id, project_id, quantity, logged_by, notes, event_ts, created_at
		FROM usage_events WHERE project_id = $1`
	args := []any{projectID}
	if materialID != "" {
		query += " AND material_id = $2"
		args = append(args, materialID)
	}
	query += " ORDER BY event_ts, created_at, id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usage events: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsageEvent
	for rows.Next() {
		var ev entity.UsageEvent
		var notes *string
		if err := rows.Scan(&ev.ID, &ev.MaterialID, &ev.ProjectID, &ev.Quantity,
			&ev.LoggedBy, &notes, &ev.Timestamp, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usage event: %w", err)
		}
		if notes != nil {
			ev.Notes = *notes
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// StockTotals agrega entregado/consumido por material con sumas NUMERIC
// exactas (equivalente al fold del reconciliador sobre el mismo
// snapshot). projectID vacío agrega todos los proyectos.
func (r *LedgerRepo) StockTotals(ctx context.Context, projectID string) ([]repository.MaterialStockTotal, error) {
	// FULL JOIN de los dos agregados: un material puede tener solo
	// entregas, solo consumos, o ambos.
	query := `
		WITH d AS (
			SELECT material_id, SUM(quantity) AS delivered, COUNT(*) AS n
			FROM delivery_events
			WHERE ($1 = '' OR project_id = $1)
			GROUP BY material_id
		), u AS (
			SELECT material_id, SUM(quantity) AS used, COUNT(*) AS n
			FROM usage_events
			WHERE ($1 = '' OR project_id = $1)
			GROUP BY material_id
		)
		SELECT
			COALESCE(d.material_id, u.material_id) AS material_id,
			COALESCE(d.delivered, 0)               AS delivered_total,
			COALESCE(u.used, 0)                    AS used_total,
			COALESCE(d.n, 0)                       AS delivery_count,
			COALESCE(u.n, 0)                       AS usage_count
		FROM d FULL JOIN u ON u.material_id = d.material_id
		ORDER BY material_id`

	rows, err := r.q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("stock totals: %w", err)
	}
	defer rows.Close()
	var totals []repository.MaterialStockTotal
	for rows.Next() {
		var t repository.MaterialStockTotal
		if err := rows.Scan(&t.MaterialID, &t.DeliveredTotal, &t.UsedTotal, &t.DeliveryCount, &t.UsageCount); err != nil {
			return nil, fmt.Errorf("scan stock total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
