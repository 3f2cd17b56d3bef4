package queries

import (
	"context"

	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFieldNotFound = errs.New("field not found")

type FieldReadStore interface {
	FindActive(ctx context.Context) ([]*FieldView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
}

type FieldQueries interface {
	List(ctx context.Context) ([]*FieldView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
}

type fieldQueriesImpl struct {
	store FieldReadStore
}

func NewFieldQueries(store FieldReadStore) FieldQueries {
	return &fieldQueriesImpl{store: store}
}

func (q *fieldQueriesImpl) List(ctx context.Context) ([]*FieldView, error) {
	fields, err := q.store.FindActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list fields")
	}
	return fields, nil
}

func (q *fieldQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error) {
	fieldView, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, errs.Wrap(err, "failed to find field")
	}
	return fieldView, nil
}
