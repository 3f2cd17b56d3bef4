package repository

import (
	"context"

	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/pgconv"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type fieldRepository struct {
	pool *pgxpool.Pool
}

func NewFieldRepository(pool *pgxpool.Pool) queries.FieldReadStore {
	return &fieldRepository{pool: pool}
}

const findActiveFieldsQuery = `
SELECT f.id, f.name, f.sport, f.price_per_hour, f.is_active, f.created_at, f.updated_at
FROM fields f
WHERE f.is_active = TRUE
ORDER BY f.name
`

const findFieldByIDQuery = `
SELECT f.id, f.name, f.sport, f.price_per_hour, f.is_active, f.created_at, f.updated_at
FROM fields f
WHERE f.id = $1
`

const findAvailabilityWindowsQuery = `
SELECT fa.field_id, fa.weekday, fa.open_time, fa.close_time
FROM field_availability fa
WHERE fa.field_id = ANY($1)
ORDER BY fa.field_id, fa.weekday
`

func (r *fieldRepository) FindActive(ctx context.Context) ([]*queries.FieldView, error) {
	rows, err := r.pool.Query(ctx, findActiveFieldsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query fields", err)
	}
	defer rows.Close()

	var fields []*queries.FieldView
	for rows.Next() {
		var f queries.FieldView
		if err := rows.Scan(&f.ID, &f.Name, &f.Sport, &f.PricePerHour, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan field", err)
		}
		f.Availability = []queries.AvailabilityWindowView{}
		fields = append(fields, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate fields", err)
	}

	if err := r.attachWindows(ctx, fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *fieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.FieldView, error) {
	var f queries.FieldView
	err := r.pool.QueryRow(ctx, findFieldByIDQuery, id).
		Scan(&f.ID, &f.Name, &f.Sport, &f.PricePerHour, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("field not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query field", err)
	}
	f.Availability = []queries.AvailabilityWindowView{}

	if err := r.attachWindows(ctx, []*queries.FieldView{&f}); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepository) attachWindows(ctx context.Context, fields []*queries.FieldView) error {
	if len(fields) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(fields))
	byID := make(map[uuid.UUID]*queries.FieldView, len(fields))
	for i, f := range fields {
		ids[i] = f.ID
		byID[f.ID] = f
	}

	rows, err := r.pool.Query(ctx, findAvailabilityWindowsQuery, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query availability windows", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fieldID uuid.UUID
		var w queries.AvailabilityWindowView
		if err := rows.Scan(&fieldID, &w.Weekday, &w.OpenTime, &w.CloseTime); err != nil {
			return infra.WrapRepoErr("failed to scan availability window", err)
		}
		if f, ok := byID[fieldID]; ok {
			f.Availability = append(f.Availability, w)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate availability windows", err)
	}
	return nil
}
